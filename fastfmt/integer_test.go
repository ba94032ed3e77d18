package fastfmt_test

import (
	"fmt"
	"fmtgen/fastfmt"
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v        int64
		flags    fastfmt.Flags
		width    int
		expected string
	}{
		{0, 0, 0, "0"},
		{7, 0, 0, "7"},
		{-7, 0, 0, "-7"},
		{5, 0, 4, "   5"},
		{-5, 0, 3, " -5"},
		{-5, fastfmt.PadZero, 4, "-005"},
		{5, fastfmt.PadZero, 4, "0005"},
		{5, fastfmt.LeftJustify, 4, "5   "},
		{-5, fastfmt.LeftJustify, 4, "-5  "},
		{5, fastfmt.LeftJustify | fastfmt.PadZero, 4, "5   "},
		{12345, 0, 3, "12345"},
		{12345, fastfmt.PadZero, 5, "12345"},
		{0, fastfmt.PadZero, 3, "000"},
		{42, 0, -1, "42"},
		{9999, 0, 0, "9999"},
		{10000, 0, 0, "10000"},
		{99_999_999, 0, 0, "99999999"},
		{100_000_000, 0, 0, "100000000"},
		{100_000_001, 0, 0, "100000001"},
		{9_999_999_999_999_999, 0, 0, "9999999999999999"},
		{10_000_000_000_000_000, 0, 0, "10000000000000000"},
		{math.MaxInt64, 0, 0, "9223372036854775807"},
		{math.MinInt64, 0, 0, "-9223372036854775808"},
		{math.MinInt64, fastfmt.PadZero, 22, "-009223372036854775808"},
		{1, 0, 40, fmt.Sprintf("%40d", 1)},
		{-1, fastfmt.PadZero, 40, fmt.Sprintf("%040d", -1)},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%d/%s/%d", tt.v, tt.flags, tt.width)
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, fastfmt.FormatInt(tt.v, tt.flags, tt.width))
		})
	}
}

func TestAppendIntMatchesFmt(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))

	verbs := []struct {
		flags  fastfmt.Flags
		layout string
	}{
		{0, "%*d"},
		{fastfmt.PadZero, "%0*d"},
		{fastfmt.LeftJustify, "%-*d"},
	}

	for range 10_000 {
		v := int64(r.Uint64())
		if r.IntN(2) == 0 {
			v >>= r.IntN(63)
		}

		width := r.IntN(24)
		for _, verb := range verbs {
			expected := fmt.Sprintf(verb.layout, width, v)
			require.Equal(t, expected, fastfmt.FormatInt(v, verb.flags, width), "v=%d width=%d flags=%s", v, width, verb.flags)
		}
	}
}

func TestAppendIntPowerBoundaries(t *testing.T) {
	t.Parallel()

	var p uint64 = 1
	for i := 0; i < 19; i++ {
		for _, u := range []uint64{p - 1, p, p + 1} {
			if u > math.MaxInt64 {
				continue
			}

			v := int64(u)
			assert.Equal(t, strconv.FormatInt(v, 10), fastfmt.FormatInt(v, 0, 0))
			assert.Equal(t, strconv.FormatInt(-v, 10), fastfmt.FormatInt(-v, 0, 0))
		}

		p *= 10
	}
}

func TestDigitCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, fastfmt.DigitCount(0))
	assert.Equal(t, 20, fastfmt.DigitCount(math.MaxUint64))

	for shift := range 64 {
		u := uint64(1) << shift
		for _, x := range []uint64{u - 1, u, u + 1} {
			if x == 0 {
				continue
			}

			assert.Equal(t, len(strconv.FormatUint(x, 10)), fastfmt.DigitCount(x), "x=%d", x)
		}
	}
}

func TestMagnitude(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), fastfmt.Magnitude(0))
	assert.Equal(t, uint64(5), fastfmt.Magnitude(-5))
	assert.Equal(t, uint64(1)<<63, fastfmt.Magnitude(math.MinInt64))
	assert.Equal(t, uint64(math.MaxInt64), fastfmt.Magnitude(math.MaxInt64))
}

func TestAppendIntReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	v := int64(-1234567890123)

	allocs := testing.AllocsPerRun(100, func() {
		buf = fastfmt.AppendInt(buf[:0], v, fastfmt.PadZero, 30)
	})

	assert.Zero(t, allocs)
	assert.Equal(t, "-00000000000000001234567890123", string(buf))
}

func FuzzAppendInt(f *testing.F) {
	f.Add(int64(0), uint8(0), 0)
	f.Add(int64(-5), uint8(fastfmt.PadZero), 4)
	f.Add(int64(math.MinInt64), uint8(fastfmt.LeftJustify), 25)
	f.Add(int64(math.MaxInt64), uint8(fastfmt.FlagsAll), 3)

	f.Fuzz(func(t *testing.T, v int64, rawFlags uint8, width int) {
		flags := fastfmt.Flags(rawFlags) & fastfmt.FlagsAll
		width %= 64

		got := fastfmt.FormatInt(v, flags, width)

		var layout string
		switch {
		case flags.Has(fastfmt.LeftJustify):
			layout = "%-*d"
		case flags.Has(fastfmt.PadZero):
			layout = "%0*d"
		default:
			layout = "%*d"
		}

		if width < 0 {
			width = 0
		}

		if expected := fmt.Sprintf(layout, width, v); got != expected {
			t.Fatalf("FormatInt(%d, %s, %d) = %q, want %q", v, flags, width, got, expected)
		}
	})
}

func BenchmarkAppendInt(b *testing.B) {
	values := []int64{0, 7, -42, 123456, -99_999_999, 1_234_567_890_123, math.MinInt64}
	buf := make([]byte, 0, 32)

	b.ReportAllocs()

	for b.Loop() {
		for _, v := range values {
			buf = fastfmt.AppendInt(buf[:0], v, 0, 0)
		}
	}
}

func BenchmarkStrconvAppendInt(b *testing.B) {
	values := []int64{0, 7, -42, 123456, -99_999_999, 1_234_567_890_123, math.MinInt64}
	buf := make([]byte, 0, 32)

	b.ReportAllocs()

	for b.Loop() {
		for _, v := range values {
			buf = strconv.AppendInt(buf[:0], v, 10)
		}
	}
}
