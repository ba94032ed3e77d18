package analyze

import (
	"fmt"
	"strconv"
	"strings"

	"fmtgen/internal/manifest"
)

// DirectivePrefix starts a format directive comment.
const DirectivePrefix = "//fmtgen:format"

// Directive is the parsed key=value list of one directive comment.
type Directive struct {
	Name     string
	Capacity *int
	Args     []manifest.KindNames
	Hook     string
}

// IsDirective reports whether a comment line is a format directive.
func IsDirective(comment string) bool {
	rest, ok := strings.CutPrefix(comment, DirectivePrefix)
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

// ParseDirective parses a directive comment line.
func ParseDirective(comment string) (Directive, error) {
	var d Directive

	if !IsDirective(comment) {
		return d, fmt.Errorf("not a %s directive", DirectivePrefix)
	}

	for _, field := range strings.Fields(strings.TrimPrefix(comment, DirectivePrefix)) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return d, fmt.Errorf("directive field %q: expected key=value", field)
		}

		switch key {
		case "name":
			d.Name = value
		case "capacity":
			n, err := strconv.Atoi(value)
			if err != nil {
				return d, fmt.Errorf("directive capacity %q: %w", value, err)
			}

			d.Capacity = &n
		case "args":
			for _, slot := range strings.Split(value, ",") {
				d.Args = append(d.Args, manifest.ParseKindNames(slot))
			}
		case "hook":
			d.Hook = value
		default:
			return d, fmt.Errorf("directive field %q: unknown key %q", field, key)
		}
	}

	return d, nil
}

// DefaultName derives a declaration name from a constant name:
// "greetingFormat" becomes "Greeting".
func DefaultName(constName string) string {
	name := strings.TrimSuffix(constName, "Format")
	if name == "" {
		name = constName
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
