package format

import (
	"fmtgen/fastfmt"
	"strconv"
	"strings"
)

// Unspecified marks a width or precision that the specifier leaves out.
const Unspecified = -1

// MaxWidth is the largest width or precision a specifier may carry.
const MaxWidth = 1 << 16

type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenSpecifier
)

func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenSpecifier:
		return "specifier"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Specifier is one parsed conversion. Conversion is always lower-case; an
// upper-case conversion character is recorded as fastfmt.UpperCase.
type Specifier struct {
	Conversion byte
	Flags      fastfmt.Flags
	Width      int
	Precision  int
}

// HasWidth reports whether an explicit width was given.
func (s Specifier) HasWidth() bool {
	return s.Width != Unspecified
}

// HasPrecision reports whether an explicit precision was given.
func (s Specifier) HasPrecision() bool {
	return s.Precision != Unspecified
}

// Verb returns the conversion character as written, e.g. 'E' for an
// upper-cased 'e'.
func (s Specifier) Verb() byte {
	if s.Flags&fastfmt.UpperCase != 0 {
		return s.Conversion - ('a' - 'A')
	}

	return s.Conversion
}

// String returns the canonical text of the specifier, e.g. "%-08.3E".
func (s Specifier) String() string {
	var sb strings.Builder

	sb.WriteByte('%')

	if s.Flags&fastfmt.LeftJustify != 0 {
		sb.WriteByte('-')
	}

	if s.Flags&fastfmt.PadZero != 0 {
		sb.WriteByte('0')
	}

	if s.Flags&fastfmt.Alternate != 0 {
		sb.WriteByte('#')
	}

	if s.HasWidth() {
		sb.WriteString(strconv.Itoa(s.Width))
	}

	if s.HasPrecision() {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(s.Precision))
	}

	sb.WriteByte(s.Verb())

	return sb.String()
}

// Token is either a run of literal text or a single specifier.
type Token struct {
	Kind TokenKind
	// Start and End are byte offsets into the template.
	Start, End int
	// Text is the literal text with "%%" already unescaped.
	Text string
	Spec Specifier
}

func (t Token) IsLiteral() bool {
	return t.Kind == TokenLiteral
}

// Specifiers returns the specifier tokens in slot order.
func Specifiers(tokens []Token) []Token {
	var res []Token

	for _, t := range tokens {
		if t.Kind == TokenSpecifier {
			res = append(res, t)
		}
	}

	return res
}

// Reconstruct joins the template spans of tokens. For tokens produced by
// Parse it returns the original template.
func Reconstruct(template string, tokens []Token) string {
	var sb strings.Builder

	for _, t := range tokens {
		sb.WriteString(template[t.Start:t.End])
	}

	return sb.String()
}
