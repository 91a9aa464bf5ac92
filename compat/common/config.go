package common

import (
	"github.com/bsthun/gut"
)

// Config adapts a fallible loader into an fx constructor. Bootstrap cannot
// continue without configuration, so failures are fatal.
func Config[T any](directory string, load func(string) (*T, error)) func() *T {
	return func() *T {
		config, err := load(directory)
		if err != nil {
			gut.Fatal("unable to load configuration", err)
		}
		return config
	}
}
