package span

import (
	"fmt"
	"runtime"
	"strings"
)

const packagePrefix = "github.com/nickmackenzie/folder-hero/package/span."

type Caller struct {
	Name *string `json:"name,omitempty"`
	Line *int    `json:"line,omitempty"`
}

func (r *Caller) String() string {
	return fmt.Sprintf("%s:%d", *r.Name, *r.Line)
}

// NewCaller describes the first stack frame outside this package.
func NewCaller() *Caller {
	// * find outer package caller
	skip := 1
	for {
		pc, _, _, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if !strings.HasPrefix(runtime.FuncForPC(pc).Name(), packagePrefix) {
			break
		}
		skip++
	}

	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		name := "unknown"
		return &Caller{Name: &name, Line: &line}
	}
	name := runtime.FuncForPC(pc).Name()
	name = name[strings.LastIndex(name, "/")+1:]

	return &Caller{
		Name: &name,
		Line: &line,
	}
}
