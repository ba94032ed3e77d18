// Package gen renders compiled format programs as Go source.
//
// Each declaration becomes one <snake_name>_fmt.go file holding a function
// per routine: straight-line appends of literal text and runtime calls,
// built with text/template and formatted with go/format. The first two
// lines of every file carry the fmtgen header and the declaration's
// fingerprint, which Stale uses to find files that need regenerating.
package gen
