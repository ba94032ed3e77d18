package fastfmt

import "strconv"

// AppendFloat appends f formatted by strconv with the given verb ('e', 'f'
// or 'g') and precision; a negative precision selects the shortest text
// that round-trips. bitSize is 32 for float32 values and 64 otherwise.
//
// UpperCase switches to 'E'/'G' and upper-cases Inf and NaN. Padding
// follows AppendInt, except that non-finite values are never zero-padded.
func AppendFloat(dst []byte, f float64, verb byte, precision, bitSize int, flags Flags, width int) []byte {
	var scratch [32]byte

	body := strconv.AppendFloat(scratch[:0], f, verb, precision, bitSize)
	if flags&UpperCase != 0 {
		upperASCII(body)
	}

	pad := width - len(body)
	if pad <= 0 {
		return append(dst, body...)
	}

	flags = flags.Resolve()

	switch {
	case flags&LeftJustify != 0:
		dst = append(dst, body...)
		return appendFill(dst, spaces, pad)

	case flags&PadZero != 0 && isFinite(body):
		if body[0] == '-' || body[0] == '+' {
			dst = append(dst, body[0])
			body = body[1:]
		}

		dst = appendFill(dst, zeros, pad)

		return append(dst, body...)

	default:
		dst = appendFill(dst, spaces, pad)
		return append(dst, body...)
	}
}

func isFinite(body []byte) bool {
	c := body[len(body)-1]
	return c >= '0' && c <= '9'
}

func upperASCII(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}
