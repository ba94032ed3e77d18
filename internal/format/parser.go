package format

import (
	"fmt"
	"fmtgen/fastfmt"
	"fmtgen/utils"
	"strings"
)

// Conversions decides which conversion characters exist. Upper-case
// characters must be accepted explicitly.
type Conversions interface {
	Accepts(c byte) bool
}

// Parse splits template into tokens. See ParseDeclaration.
func Parse(template string, conversions Conversions) ([]Token, error) {
	return ParseDeclaration("", template, conversions)
}

// ParseDeclaration splits template into tokens; name is recorded in errors.
// Adjacent literal text, including "%%" escapes, is merged into one token.
func ParseDeclaration(name, template string, conversions Conversions) ([]Token, error) {
	p := parser{name: name, template: template, conversions: conversions, litStart: -1}

	return p.parse()
}

type parser struct {
	name        string
	template    string
	conversions Conversions

	tokens   []Token
	lit      strings.Builder
	litStart int
}

func (p *parser) parse() ([]Token, error) {
	t := p.template

	for i := 0; i < len(t); {
		if t[i] != '%' {
			j := strings.IndexByte(t[i:], '%')
			if j < 0 {
				j = len(t) - i
			}

			p.literal(i, t[i:i+j])
			i += j

			continue
		}

		if i+1 < len(t) && t[i+1] == '%' {
			p.literal(i, "%")
			i += 2

			continue
		}

		spec, end, err := p.specifier(i)
		if err != nil {
			return nil, err
		}

		p.flush(i)
		p.tokens = append(p.tokens, Token{Kind: TokenSpecifier, Start: i, End: end, Spec: spec})
		i = end
	}

	p.flush(len(t))

	return p.tokens, nil
}

func (p *parser) literal(at int, text string) {
	if p.litStart < 0 {
		p.litStart = at
	}

	p.lit.WriteString(text)
}

func (p *parser) flush(end int) {
	if p.litStart < 0 {
		return
	}

	p.tokens = append(p.tokens, Token{Kind: TokenLiteral, Start: p.litStart, End: end, Text: p.lit.String()})
	p.lit.Reset()
	p.litStart = -1
}

// specifier parses the specifier starting at the '%' at offset start and
// returns it with the offset just past its conversion character.
func (p *parser) specifier(start int) (Specifier, int, error) {
	t := p.template
	spec := Specifier{Width: Unspecified, Precision: Unspecified}
	i := start + 1

	if i == len(t) {
		return spec, 0, p.errorf(start, "dangling '%%' at end of template")
	}

flags:
	for ; i < len(t); i++ {
		switch t[i] {
		case '-':
			spec.Flags |= fastfmt.LeftJustify
		case '0':
			spec.Flags |= fastfmt.PadZero
		case '#':
			spec.Flags |= fastfmt.Alternate
		default:
			break flags
		}
	}

	var err error

	if i < len(t) && isDigit(t[i]) {
		if spec.Width, i, err = p.number(start, i, "width"); err != nil {
			return spec, 0, err
		}
	}

	if i < len(t) && t[i] == '.' {
		i++
		if i == len(t) || !isDigit(t[i]) {
			return spec, 0, p.errorf(start, "expected digit after '.'")
		}

		if spec.Precision, i, err = p.number(start, i, "precision"); err != nil {
			return spec, 0, err
		}
	}

	if i == len(t) {
		return spec, 0, p.errorf(start, "missing conversion character")
	}

	c := t[i]
	if !p.conversions.Accepts(c) {
		return spec, 0, &UnknownConversionError{Declaration: p.name, Offset: start, Conversion: c}
	}

	if utils.IsInRange('A', c, 'Z') {
		c += 'a' - 'A'
		spec.Flags |= fastfmt.UpperCase
	}

	spec.Conversion = c

	return spec, i + 1, nil
}

func (p *parser) number(start, i int, what string) (int, int, error) {
	n := 0

	for ; i < len(p.template) && isDigit(p.template[i]); i++ {
		n = n*10 + int(p.template[i]-'0')
		if n > MaxWidth {
			return 0, 0, p.errorf(start, "%s exceeds %d", what, MaxWidth)
		}
	}

	return n, i, nil
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &ParseError{Declaration: p.name, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func isDigit(c byte) bool {
	return utils.IsInRange('0', c, '9')
}
