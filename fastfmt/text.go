package fastfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	spaces = "                                "
	zeros  = "00000000000000000000000000000000"
)

func appendFill(dst []byte, fill string, n int) []byte {
	for n > len(fill) {
		dst = append(dst, fill...)
		n -= len(fill)
	}

	if n > 0 {
		dst = append(dst, fill[:n]...)
	}

	return dst
}

// AppendPadding appends n spaces to dst. Non-positive n is a no-op.
func AppendPadding(dst []byte, n int) []byte {
	return appendFill(dst, spaces, n)
}

// AppendBool appends "true" or "false" ("TRUE"/"FALSE" with UpperCase),
// padded with spaces to width.
func AppendBool(dst []byte, v bool, flags Flags, width int) []byte {
	var s string

	switch upper := flags&UpperCase != 0; {
	case v && upper:
		s = "TRUE"
	case v:
		s = "true"
	case upper:
		s = "FALSE"
	default:
		s = "false"
	}

	return appendJustified(dst, s, len(s), flags, width)
}

// AppendRune appends the UTF-8 encoding of r, padded with spaces to width.
// Invalid runes are written as U+FFFD.
func AppendRune(dst []byte, r rune, flags Flags, width int) []byte {
	if flags&UpperCase != 0 {
		r = unicode.ToUpper(r)
	}

	pad := width - 1
	if pad > 0 && flags&LeftJustify == 0 {
		dst = appendFill(dst, spaces, pad)
	}

	dst = utf8.AppendRune(dst, r)

	if pad > 0 && flags&LeftJustify != 0 {
		dst = appendFill(dst, spaces, pad)
	}

	return dst
}

// AppendString appends s, truncated to precision runes when precision is
// non-negative and padded with spaces to width runes.
func AppendString(dst []byte, s string, flags Flags, width, precision int) []byte {
	if width <= 0 && precision < 0 && flags&UpperCase == 0 {
		return append(dst, s...)
	}

	if precision >= 0 {
		s = truncateRunes(s, precision)
	}

	if flags&UpperCase != 0 {
		s = strings.ToUpper(s)
	}

	n := len(s)
	if width > 0 {
		n = utf8.RuneCountInString(s)
	}

	return appendJustified(dst, s, n, flags, width)
}

// appendJustified writes s, which is runes long, space-padded to width.
func appendJustified(dst []byte, s string, runes int, flags Flags, width int) []byte {
	pad := width - runes
	if pad > 0 && flags&LeftJustify == 0 {
		dst = appendFill(dst, spaces, pad)
	}

	dst = append(dst, s...)

	if pad > 0 && flags&LeftJustify != 0 {
		dst = appendFill(dst, spaces, pad)
	}

	return dst
}

func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}

		n--
	}

	return s
}
