package fastfmt_test

import (
	"fmt"
	"fmtgen/fastfmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v        bool
		flags    fastfmt.Flags
		width    int
		expected string
	}{
		{true, 0, 0, "true"},
		{false, 0, 0, "false"},
		{true, fastfmt.UpperCase, 0, "TRUE"},
		{false, fastfmt.UpperCase, 0, "FALSE"},
		{true, 0, 6, "  true"},
		{true, fastfmt.LeftJustify, 6, "true  "},
		{false, fastfmt.PadZero, 7, "  false"},
		{false, 0, 3, "false"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, string(fastfmt.AppendBool(nil, tt.v, tt.flags, tt.width)),
			"v=%t flags=%s width=%d", tt.v, tt.flags, tt.width)
	}
}

func TestAppendRune(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", string(fastfmt.AppendRune(nil, 'x', 0, 0)))
	assert.Equal(t, "X", string(fastfmt.AppendRune(nil, 'x', fastfmt.UpperCase, 0)))
	assert.Equal(t, "  é", string(fastfmt.AppendRune(nil, 'é', 0, 3)))
	assert.Equal(t, "é  ", string(fastfmt.AppendRune(nil, 'é', fastfmt.LeftJustify, 3)))
	assert.Equal(t, "�", string(fastfmt.AppendRune(nil, -1, 0, 0)))
}

func TestAppendString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		s         string
		flags     fastfmt.Flags
		width     int
		precision int
		expected  string
	}{
		{"plain", "abc", 0, 0, -1, "abc"},
		{"right", "abc", 0, 5, -1, "  abc"},
		{"left", "abc", fastfmt.LeftJustify, 5, -1, "abc  "},
		{"zero flag ignored", "abc", fastfmt.PadZero, 5, -1, "  abc"},
		{"precision", "abcdef", 0, 0, 3, "abc"},
		{"precision zero", "abcdef", 0, 0, 0, ""},
		{"precision longer", "ab", 0, 0, 5, "ab"},
		{"precision and width", "abcdef", 0, 5, 2, "   ab"},
		{"runes", "héllo", 0, 7, -1, "  héllo"},
		{"rune precision", "héllo", 0, 0, 2, "hé"},
		{"upper", "héllo", fastfmt.UpperCase, 0, -1, "HÉLLO"},
		{"empty", "", 0, 2, -1, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fastfmt.AppendString([]byte("> "), tt.s, tt.flags, tt.width, tt.precision)
			assert.Equal(t, "> "+tt.expected, string(got))
		})
	}
}

func TestAppendPadding(t *testing.T) {
	t.Parallel()

	assert.Empty(t, fastfmt.AppendPadding(nil, 0))
	assert.Empty(t, fastfmt.AppendPadding(nil, -3))
	assert.Equal(t, strings.Repeat(" ", 100), string(fastfmt.AppendPadding(nil, 100)))
}

func TestAppendFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		f         float64
		verb      byte
		precision int
		bitSize   int
		flags     fastfmt.Flags
		width     int
		expected  string
	}{
		{"fixed", 3.5, 'f', 2, 64, 0, 0, "3.50"},
		{"shortest", 0.1, 'g', -1, 64, 0, 0, "0.1"},
		{"float32 shortest", float64(float32(0.1)), 'g', -1, 32, 0, 0, "0.1"},
		{"exponent", 1e6, 'e', -1, 64, 0, 0, "1e+06"},
		{"exponent upper", 1e6, 'e', -1, 64, fastfmt.UpperCase, 0, "1E+06"},
		{"width", 2.5, 'f', 1, 64, 0, 6, "   2.5"},
		{"zero padded negative", -1.5, 'f', 1, 64, fastfmt.PadZero, 6, "-001.5"},
		{"left", 1.5, 'f', 1, 64, fastfmt.LeftJustify | fastfmt.PadZero, 5, "1.5  "},
		{"inf not zero padded", math.Inf(1), 'f', -1, 64, fastfmt.PadZero, 6, "  +Inf"},
		{"nan upper", math.NaN(), 'g', -1, 64, fastfmt.UpperCase, 0, "NAN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fastfmt.AppendFloat(nil, tt.f, tt.verb, tt.precision, tt.bitSize, tt.flags, tt.width)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

type money struct {
	cents int64
}

func (m money) AppendFormat(dst []byte, flags fastfmt.Flags, width, precision int) []byte {
	dst = append(dst, '$')
	dst = fastfmt.AppendInt(dst, m.cents/100, 0, 0)
	dst = append(dst, '.')

	return fastfmt.AppendInt(dst, m.cents%100, fastfmt.PadZero, 2)
}

func TestAppendValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$12.05", string(fastfmt.AppendValue(nil, money{1205}, 0, 0, -1)))
	assert.Equal(t, "[1 2]", string(fastfmt.AppendValue(nil, []int{1, 2}, 0, 0, -1)))
	assert.Equal(t, "  <nil>", string(fastfmt.AppendValue(nil, nil, 0, 7, -1)))
	assert.Equal(t, "3.2", string(fastfmt.AppendValue(nil, 3.25, 0, 0, 3)))
	assert.Equal(t, fmt.Sprint(struct{ A int }{4}), string(fastfmt.AppendValue(nil, struct{ A int }{4}, 0, 0, -1)))
}

func TestAppendFormattable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$0.07", string(fastfmt.AppendFormattable(nil, money{7}, 0, 0, -1)))
	assert.Equal(t, "<nil>", string(fastfmt.AppendFormattable(nil, nil, 0, 0, -1)))
}

func TestFlags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", fastfmt.FlagsNone.String())
	assert.Equal(t, "PadZero|UpperCase", (fastfmt.PadZero | fastfmt.UpperCase).String())
	assert.Equal(t, "PadZero|LeftJustify|UpperCase|Alternate", fastfmt.FlagsAll.String())
	assert.Equal(t, "fastfmt.LeftJustify", fastfmt.LeftJustify.GoExpr("fastfmt"))
	assert.Equal(t, "0", fastfmt.FlagsNone.GoExpr("fastfmt"))
	assert.Equal(t, fastfmt.LeftJustify, (fastfmt.LeftJustify | fastfmt.PadZero).Resolve())
	assert.Equal(t, fastfmt.PadZero, fastfmt.PadZero.Resolve())
	assert.True(t, fastfmt.FlagsAll.Has(fastfmt.PadZero|fastfmt.Alternate))
	assert.False(t, fastfmt.PadZero.Has(fastfmt.PadZero|fastfmt.Alternate))
}
