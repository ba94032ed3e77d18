package fastfmt

import "fmt"

// Formattable is implemented by values that render themselves for %s,
// honoring the specifier's flags, width and precision. Precision is -1 and
// width is 0 when the specifier leaves them out.
type Formattable interface {
	AppendFormat(dst []byte, flags Flags, width, precision int) []byte
}

// AppendFormattable appends v rendered by its own AppendFormat method. A nil
// interface is written as "<nil>".
func AppendFormattable(dst []byte, v Formattable, flags Flags, width, precision int) []byte {
	if v == nil {
		return AppendString(dst, "<nil>", flags, width, -1)
	}

	return v.AppendFormat(dst, flags, width, precision)
}

// AppendValue appends an arbitrary value. Formattable values render
// themselves; everything else goes through fmt.Sprint and is then padded
// and truncated like a string.
func AppendValue(dst []byte, v any, flags Flags, width, precision int) []byte {
	if f, ok := v.(Formattable); ok {
		return f.AppendFormat(dst, flags, width, precision)
	}

	return AppendString(dst, fmt.Sprint(v), flags, width, precision)
}
