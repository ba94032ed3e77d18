// Package analyze discovers format declarations in Go source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// string constants annotated with a directive:
//
//	//fmtgen:format name=Greeting capacity=48 args=string,int|int64 hook=describe
//	const GreetingFormat = "Hello %s, you are %3d"
//
// Every key is optional. The constant value is the template; the name
// defaults to the constant name, exported, with a trailing "Format"
// trimmed. Each loaded package with at least one directive becomes a
// manifest.File whose output directory is the package directory.
package analyze
