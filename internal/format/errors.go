package format

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by every error Parse returns.
var ErrInvalidFormat = errors.New("invalid format string")

// ParseError reports a malformed specifier. Offset is the byte offset of
// the '%' that starts it.
type ParseError struct {
	Declaration string
	Offset      int
	Reason      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%soffset %d: %s", declarationPrefix(e.Declaration), e.Offset, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// UnknownConversionError reports a conversion character that no rule
// accepts.
type UnknownConversionError struct {
	Declaration string
	Offset      int
	Conversion  byte
}

func (e *UnknownConversionError) Error() string {
	return fmt.Sprintf("%soffset %d: unknown conversion %q", declarationPrefix(e.Declaration), e.Offset, rune(e.Conversion))
}

func (e *UnknownConversionError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func declarationPrefix(name string) string {
	if name == "" {
		return ""
	}

	return name + ": "
}
