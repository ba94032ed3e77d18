package primitive

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

func parseBool(text string) (any, error) {
	v, err := strconv.ParseBool(text)
	if err != nil {
		return nil, fmt.Errorf("invalid bool %q: %w", text, err)
	}

	return v, nil
}

func parseRune(text string) (any, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || r == utf8.RuneError {
		return nil, fmt.Errorf("invalid rune %q: want exactly one character", text)
	}

	return r, nil
}

func parseInt(text string, k KindEnum) (any, error) {
	v, err := strconv.ParseInt(text, 10, k.Bits())
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", k.Name(), text, err)
	}

	switch k {
	case KindInt16:
		return int16(v), nil
	case KindInt32:
		return int32(v), nil
	case KindInt64:
		return v, nil
	default:
		return int(v), nil
	}
}

func parseFloat(text string, k KindEnum) (any, error) {
	v, err := strconv.ParseFloat(text, k.Bits())
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", k.Name(), text, err)
	}

	if k == KindFloat32 {
		return float32(v), nil
	}

	return v, nil
}
