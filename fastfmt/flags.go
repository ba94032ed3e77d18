package fastfmt

import "strings"

// Flags is the set of printf flags carried by one specifier.
type Flags uint8

const (
	PadZero     Flags = 1 << iota // '0': pad numbers with zeros after the sign
	LeftJustify                   // '-': pad with trailing spaces, wins over PadZero
	UpperCase                     // upper-case conversion character: %B, %C, %E, %G, %S
	Alternate                     // '#': alternate form, handed through to Formattable values

	FlagsAll  Flags = (1 << iota) - 1 // all flags combined
	FlagsNone Flags = 0               // no flags selected
)

var flagNames = [...]struct {
	flag Flags
	name string
}{
	{PadZero, "PadZero"},
	{LeftJustify, "LeftJustify"},
	{UpperCase, "UpperCase"},
	{Alternate, "Alternate"},
}

// Has reports whether every flag in f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Resolve applies the conflict policy: left-justification silently
// overrides zero padding.
func (fl Flags) Resolve() Flags {
	if fl&LeftJustify != 0 {
		return fl &^ PadZero
	}

	return fl
}

// String returns the flag names joined by "|", or "0" for an empty set.
func (fl Flags) String() string {
	return fl.join("")
}

// GoExpr returns a Go expression for fl qualified with the package alias
// pkg, e.g. "fastfmt.PadZero|fastfmt.UpperCase". An empty set is "0".
func (fl Flags) GoExpr(pkg string) string {
	if pkg != "" {
		pkg += "."
	}

	return fl.join(pkg)
}

func (fl Flags) join(prefix string) string {
	if fl&FlagsAll == 0 {
		return "0"
	}

	var parts []string

	for _, fn := range flagNames {
		if fl&fn.flag != 0 {
			parts = append(parts, prefix+fn.name)
		}
	}

	return strings.Join(parts, "|")
}
