package plan

import (
	"errors"
	"fmt"
	"strings"

	"fmtgen/primitive"
)

// ErrTooManyRoutines is wrapped when a declaration's kind product exceeds
// Config.MaxRoutines.
var ErrTooManyRoutines = errors.New("too many routines")

// TypeMismatchError reports a kind that a slot does not accept, or an
// argument count that does not match the number of slots (Slot == -1).
type TypeMismatchError struct {
	Declaration string
	// Slot is the specifier index, or -1 for an arity mismatch.
	Slot int
	// Offset is the byte offset of the specifier in the template.
	Offset     int
	Conversion byte
	Got        primitive.KindEnum
	Accepted   []primitive.KindEnum

	// Want and Have are the slot and argument counts of an arity mismatch.
	Want, Have int
}

func (e *TypeMismatchError) Error() string {
	if e.Slot < 0 {
		return fmt.Sprintf("%s: %d arguments for %d specifiers", e.Declaration, e.Have, e.Want)
	}

	return fmt.Sprintf("%s: slot %d (%%%c at offset %d): kind %s not accepted, want %s",
		e.Declaration, e.Slot, e.Conversion, e.Offset, e.Got.Name(), kindList(e.Accepted))
}

// UnknownKindError reports a kind name no kind is called by.
type UnknownKindError struct {
	Declaration string
	Slot        int
	Name        string
	Suggestions []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: slot %d: unknown kind %q", e.Declaration, e.Slot, e.Name)
}

func kindList(kinds []primitive.KindEnum) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}

	return strings.Join(names, "|")
}
