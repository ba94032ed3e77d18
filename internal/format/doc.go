// Package format parses printf-style templates into ordered tokens.
//
// A template is split into literal tokens and specifier tokens. A specifier
// has the shape
//
//	%[flags][width][.precision]conversion
//
// with flags '-' (left-justify), '0' (zero padding) and '#' (alternate
// form). "%%" is a literal percent sign. Which conversion characters exist
// is decided by the caller through the Conversions interface, usually the
// conversion registry.
//
// Token spans always cover the template exactly: joining
// template[t.Start:t.End] over all tokens reproduces the input.
package format
