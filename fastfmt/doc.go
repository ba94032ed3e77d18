// Package fastfmt is the runtime imported by code that fmtgen generates.
//
// Every generated formatting function is a straight-line sequence of
// appends into a caller-owned []byte. Literal text is copied with a plain
// append; each specifier calls one of the appenders below with its flags,
// width and precision resolved at generation time.
//
// The integer path is the hot one. AppendInt converts a signed 64-bit value
// without a division per digit: the digit count comes from a leading-zero
// table, and digits are written in 4-digit chunks through a table of
// two-digit pairs.
//
// All functions are pure. They are safe for concurrent use as long as each
// call works on its own buffer.
package fastfmt
