// Package manifest loads format declarations from YAML.
//
// A manifest names the Go package to generate and lists the formats it
// holds:
//
//	version: "1"
//	package: greetings
//	output: ./greetings
//	formats:
//	  - name: Greeting
//	    format: "Hello %s, you are %3d"
//	    args: [string, "int|int64"]
//
// Each entry of args restricts the kinds of one specifier slot; several
// kinds are written either as a YAML sequence or joined with '|'.
//
// Directive discovery (package analyze) produces the same File type, so
// everything downstream works on manifests only.
package manifest
