// Package match provides identifier normalization and edit-distance ranking.
//
// Key functions:
//   - NormalizeIdent: folds case and separators for fuzzy comparison
//   - SnakeCase: splits CamelCase names for generated file names
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against a misspelt one
package match
