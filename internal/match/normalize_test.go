package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"int64":        "int64",
		"Int_64":       "int64",
		"FLOAT-32":     "float32",
		"format table": "formattable",
		"":             "",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, NormalizeIdent(in), in)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Greeting":       "greeting",
		"HTTPStatusLine": "http_status_line",
		"logLine2":       "log_line2",
		"OrderID":        "order_id",
		"already_snake":  "already_snake",
		"X":              "x",
		"":               "",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, SnakeCase(in), in)
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"bool", "rune", "int", "int16", "int32", "int64", "float32", "float64", "string", "formattable", "any"}

	assert.Equal(t, []string{"int64"}, Suggest("imt64", known, 1))
	assert.Equal(t, []string{"string"}, Suggest("strng", known, 1))
	assert.Equal(t, []string{"float64"}, Suggest("flaot64", known, 2))
	assert.Equal(t, []string{"int64"}, Suggest("Int_64", known, 1))
	assert.Empty(t, Suggest("uint8x", []string{"bool", "any"}, 3))
	assert.Empty(t, Suggest("int", known, 0))

	ranked := RankCandidates("int", known)
	assert.Equal(t, "int", ranked[0].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
}
