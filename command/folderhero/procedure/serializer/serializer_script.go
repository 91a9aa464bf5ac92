package serializer

import (
	"fmt"
	"strings"
)

type Flavor string

const (
	FlavorWindows Flavor = "windows"
	FlavorLinux   Flavor = "linux"
	FlavorMac     Flavor = "mac"
)

var Flavors = []Flavor{FlavorWindows, FlavorLinux, FlavorMac}

func ParseFlavor(value string) (Flavor, error) {
	flavor := Flavor(strings.ToLower(strings.TrimSpace(value)))
	for _, f := range Flavors {
		if f == flavor {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown script flavor %q", value)
}

func (r Flavor) Title() string {
	switch r {
	case FlavorWindows:
		return "Windows Script"
	case FlavorLinux:
		return "Linux Script"
	case FlavorMac:
		return "Mac Script"
	}
	return string(r)
}

// Separator joins path segments on the flavor's platform.
func (r Flavor) Separator() string {
	if r == FlavorWindows {
		return "\\"
	}
	return "/"
}

func (r Flavor) command() (string, error) {
	switch r {
	case FlavorWindows:
		return "mkdir", nil
	case FlavorLinux, FlavorMac:
		return "mkdir -p", nil
	}
	return "", fmt.Errorf("unknown script flavor %q", string(r))
}

// Script emits one directory command per non-empty input line. Lines are
// independent: a nested line does not inherit its ancestors' path.
func Script(flavor Flavor, input string) (string, error) {
	command, err := flavor.command()
	if err != nil {
		return "", err
	}

	commands := make([]string, 0)
	for _, line := range strings.Split(input, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		commands = append(commands, command+" "+name)
	}

	return strings.Join(commands, "\n"), nil
}

type ScriptBlock struct {
	Flavor  Flavor `json:"flavor" yaml:"flavor"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Scripts renders the three labelled blocks shown together on export.
func Scripts(input string) []*ScriptBlock {
	blocks := make([]*ScriptBlock, 0, len(Flavors))
	for _, flavor := range Flavors {
		// * known flavors never fail
		content, _ := Script(flavor, input)
		blocks = append(blocks, &ScriptBlock{
			Flavor:  flavor,
			Title:   flavor.Title(),
			Content: content,
		})
	}
	return blocks
}
