// Package registry holds the conversion table: which conversion characters
// exist, which argument kinds each accepts, and how a specifier is emitted
// as Go source or evaluated in-process.
//
// The built-in table covers %b, %c, %d, %e, %f, %g and %s. Custom rules are
// added through a Builder before the first Build; a built Registry is
// immutable and safe for concurrent use.
package registry
