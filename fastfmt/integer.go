package fastfmt

import "math/bits"

const (
	tenPow4  = 10_000
	tenPow8  = 100_000_000
	tenPow16 = 10_000_000_000_000_000

	maxBelow1e8  = 99_999_999
	maxBelow1e16 = 9_999_999_999_999_999
)

// digitPairs[2*n : 2*n+2] is the two-digit decimal text of n, 0 <= n < 100.
const digitPairs = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

var powersOf10 = [20]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// maxLog10ForLeadingZeros[i] == floor(log10(2^(64-i))).
var maxLog10ForLeadingZeros = [65]uint8{
	19, 18, 18, 18, 18, 17, 17, 17, 16, 16, 16, 15, 15, 15, 15, 14, 14, 14, 13, 13, 13, 12, 12,
	12, 12, 11, 11, 11, 10, 10, 10, 9, 9, 9, 9, 8, 8, 8, 7, 7, 7, 6, 6, 6, 6, 5, 5, 5, 4, 4, 4,
	3, 3, 3, 3, 2, 2, 2, 1, 1, 1, 0, 0, 0, 0,
}

// DigitCount returns the number of decimal digits of u. Zero has one digit.
func DigitCount(u uint64) int {
	if u == 0 {
		return 1
	}

	d := int(maxLog10ForLeadingZeros[bits.LeadingZeros64(u)])
	if u >= powersOf10[d] {
		d++
	}

	return d
}

// Magnitude returns |v| as an unsigned value. The negation happens in the
// unsigned domain, so math.MinInt64 maps to 1<<63.
func Magnitude(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}

	return u
}

// AppendInt appends the decimal text of v to dst.
//
// width is the minimum field length including the sign. Without flags the
// field is right-aligned with spaces; PadZero puts zeros between the sign
// and the digits ("-005"); LeftJustify pads with trailing spaces and
// overrides PadZero. AppendInt never fails and does not allocate beyond
// growing dst.
func AppendInt(dst []byte, v int64, flags Flags, width int) []byte {
	return appendDecimal(dst, Magnitude(v), v < 0, flags, width)
}

// FormatInt returns the decimal text of v. See AppendInt.
func FormatInt(v int64, flags Flags, width int) string {
	return string(AppendInt(make([]byte, 0, max(width, 20)), v, flags, width))
}

func appendDecimal(dst []byte, u uint64, negative bool, flags Flags, width int) []byte {
	n := DigitCount(u)
	if negative {
		n++
	}

	pad := width - n
	leftJustify := flags&LeftJustify != 0
	zeroPad := flags&PadZero != 0 && !leftJustify

	if pad > 0 && !leftJustify && !zeroPad {
		dst = appendFill(dst, spaces, pad)
	}

	if negative {
		dst = append(dst, '-')
	}

	if pad > 0 && zeroPad {
		dst = appendFill(dst, zeros, pad)
	}

	// u = aaaabbbbccccddddeeee
	switch {
	case u <= maxBelow1e8:
		dst = appendBelow1e8(dst, uint32(u))
	case u <= maxBelow1e16:
		dst = appendBelow1e8(dst, uint32(u/tenPow8))
		dst = appendFull8(dst, uint32(u%tenPow8))
	default:
		rest := u % tenPow16
		dst = appendHead4(dst, uint32(u/tenPow16))
		dst = appendFull8(dst, uint32(rest/tenPow8))
		dst = appendFull8(dst, uint32(rest%tenPow8))
	}

	if pad > 0 && leftJustify {
		dst = appendFill(dst, spaces, pad)
	}

	return dst
}

// appendBelow1e8 writes v < 1e8 without leading zeros.
func appendBelow1e8(dst []byte, v uint32) []byte {
	if v < tenPow4 {
		return appendHead4(dst, v)
	}

	dst = appendHead4(dst, v/tenPow4)

	return appendFull4(dst, v%tenPow4)
}

// appendHead4 writes v < 1e4 as the most significant chunk: leading zeros
// are suppressed, but zero itself is written as "0".
func appendHead4(dst []byte, v uint32) []byte {
	hi := (v / 100) * 2
	lo := (v % 100) * 2

	if v >= 1000 {
		dst = append(dst, digitPairs[hi])
	}

	if v >= 100 {
		dst = append(dst, digitPairs[hi+1])
	}

	if v >= 10 {
		dst = append(dst, digitPairs[lo])
	}

	return append(dst, digitPairs[lo+1])
}

// appendFull4 writes v < 1e4 as exactly four digits.
func appendFull4(dst []byte, v uint32) []byte {
	hi := (v / 100) * 2
	lo := (v % 100) * 2

	return append(dst, digitPairs[hi], digitPairs[hi+1], digitPairs[lo], digitPairs[lo+1])
}

// appendFull8 writes v < 1e8 as exactly eight digits.
func appendFull8(dst []byte, v uint32) []byte {
	dst = appendFull4(dst, v/tenPow4)

	return appendFull4(dst, v%tenPow4)
}
