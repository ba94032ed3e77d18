// Package diagnostic collects generation-time errors and warnings.
//
// Each diagnostic carries a stable code (see the Code constants), the
// declaration it belongs to and, when known, the byte offset in the
// template. Diagnostics built from an error keep it, so the combined error
// returned by Diagnostics.Error still answers errors.Is and errors.As.
package diagnostic
