package format_test

import (
	"errors"
	"fmtgen/fastfmt"
	"fmtgen/internal/format"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accepted lists the conversion characters known to the tests.
type accepted string

func (a accepted) Accepts(c byte) bool {
	return strings.IndexByte(string(a), c) >= 0
}

const printf = accepted("bBcdefgsESG")

func spec(conv byte, flags fastfmt.Flags, width, precision int) format.Specifier {
	return format.Specifier{Conversion: conv, Flags: flags, Width: width, Precision: precision}
}

func TestParse(t *testing.T) {
	t.Parallel()

	const u = format.Unspecified

	tests := []struct {
		name     string
		template string
		expected []format.Token
	}{
		{
			name:     "empty",
			template: "",
			expected: nil,
		},
		{
			name:     "literal only",
			template: "hello",
			expected: []format.Token{{Kind: format.TokenLiteral, Start: 0, End: 5, Text: "hello"}},
		},
		{
			name:     "escaped percent merges with literal",
			template: "100%% sure",
			expected: []format.Token{{Kind: format.TokenLiteral, Start: 0, End: 10, Text: "100% sure"}},
		},
		{
			name:     "specifier only",
			template: "%d",
			expected: []format.Token{{Kind: format.TokenSpecifier, Start: 0, End: 2, Spec: spec('d', 0, u, u)}},
		},
		{
			name:     "mixed",
			template: "Hello %s, you are %3d",
			expected: []format.Token{
				{Kind: format.TokenLiteral, Start: 0, End: 6, Text: "Hello "},
				{Kind: format.TokenSpecifier, Start: 6, End: 8, Spec: spec('s', 0, u, u)},
				{Kind: format.TokenLiteral, Start: 8, End: 18, Text: ", you are "},
				{Kind: format.TokenSpecifier, Start: 18, End: 21, Spec: spec('d', 0, 3, u)},
			},
		},
		{
			name:     "flags width precision",
			template: "%-08.3f",
			expected: []format.Token{{Kind: format.TokenSpecifier, Start: 0, End: 7, Spec: spec('f', fastfmt.LeftJustify|fastfmt.PadZero, 8, 3)}},
		},
		{
			name:     "duplicate flags are idempotent",
			template: "%--#5s",
			expected: []format.Token{{Kind: format.TokenSpecifier, Start: 0, End: 6, Spec: spec('s', fastfmt.LeftJustify|fastfmt.Alternate, 5, u)}},
		},
		{
			name:     "upper case conversion",
			template: "%E",
			expected: []format.Token{{Kind: format.TokenSpecifier, Start: 0, End: 2, Spec: spec('e', fastfmt.UpperCase, u, u)}},
		},
		{
			name:     "adjacent specifiers",
			template: "%d%%%b",
			expected: []format.Token{
				{Kind: format.TokenSpecifier, Start: 0, End: 2, Spec: spec('d', 0, u, u)},
				{Kind: format.TokenLiteral, Start: 2, End: 4, Text: "%"},
				{Kind: format.TokenSpecifier, Start: 4, End: 6, Spec: spec('b', 0, u, u)},
			},
		},
		{
			name:     "zero precision",
			template: "%.0s",
			expected: []format.Token{{Kind: format.TokenSpecifier, Start: 0, End: 4, Spec: spec('s', 0, u, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := format.Parse(tt.template, printf)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
			assert.Equal(t, tt.template, format.Reconstruct(tt.template, tokens))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		template string
		offset   int
		unknown  byte
	}{
		{template: "abc %", offset: 4},
		{template: "%-", offset: 0},
		{template: "x %5.d", offset: 2},
		{template: "%.", offset: 0},
		{template: "%70000d", offset: 0},
		{template: "%.99999s", offset: 0},
		{template: "%3", offset: 0},
		{template: "ok %z", offset: 3, unknown: 'z'},
		{template: "%D", offset: 0, unknown: 'D'},
		{template: "%d %C", offset: 3, unknown: 'C'},
		{template: "% d", offset: 0, unknown: ' '},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			t.Parallel()

			tokens, err := format.ParseDeclaration("Decl", tt.template, printf)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.ErrorIs(t, err, format.ErrInvalidFormat)
			assert.Contains(t, err.Error(), "Decl: ")

			if tt.unknown != 0 {
				var uerr *format.UnknownConversionError
				require.ErrorAs(t, err, &uerr)
				assert.Equal(t, tt.offset, uerr.Offset)
				assert.Equal(t, tt.unknown, uerr.Conversion)

				return
			}

			var perr *format.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, "Decl", perr.Declaration)
		})
	}
}

func TestParseReconstructs(t *testing.T) {
	t.Parallel()

	templates := []string{
		"%%",
		"%%%%",
		"a%%b%dc",
		"%s%s%s",
		"[%-10s|%010d|%#.2g]",
		"héllo %c wörld %S",
		"trailing %d%%",
	}

	for _, tmpl := range templates {
		tokens, err := format.Parse(tmpl, printf)
		require.NoError(t, err, tmpl)
		assert.Equal(t, tmpl, format.Reconstruct(tmpl, tokens))

		for i := 1; i < len(tokens); i++ {
			assert.Equal(t, tokens[i-1].End, tokens[i].Start, "tokens must be contiguous in %q", tmpl)
			assert.False(t, tokens[i-1].IsLiteral() && tokens[i].IsLiteral(), "literals must be merged in %q", tmpl)
		}
	}
}

func TestSpecifiers(t *testing.T) {
	t.Parallel()

	tokens, err := format.Parse("%s and %5d or %%", printf)
	require.NoError(t, err)

	specs := format.Specifiers(tokens)
	require.Len(t, specs, 2)
	assert.Equal(t, byte('s'), specs[0].Spec.Conversion)
	assert.Equal(t, 5, specs[1].Spec.Width)
}

func TestSpecifierString(t *testing.T) {
	t.Parallel()

	for _, tmpl := range []string{"%d", "%-5s", "%08.3E", "%#x", "%.2f"} {
		tokens, err := format.Parse(tmpl, accepted("dsEefx"))
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, tmpl, tokens[0].Spec.String())
	}

	assert.Equal(t, "%-08S", spec('s', fastfmt.FlagsAll&^fastfmt.Alternate, 8, format.Unspecified).String())
	assert.False(t, errors.Is(errors.New("x"), format.ErrInvalidFormat))
}
