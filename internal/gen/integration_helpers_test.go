package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// exampleTag enables the example tests that call generated functions.
const exampleTag = "fmtgen_examples"

func repoRoot(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	return root
}

// runExampleIntegrationTest generates the code of an example with the CLI
// and runs the example's tagged tests against it.
func runExampleIntegrationTest(t *testing.T, exampleName string, genArgs ...string) {
	t.Helper()

	root := repoRoot(t)
	exampleDir := filepath.Join(root, "examples", exampleName)

	removeGenerated(t, exampleDir)

	args := append([]string{"run", "./cmd/fmtgen", "gen"}, genArgs...)
	cmd := exec.CommandContext(t.Context(), "go", args...)
	cmd.Dir = root

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: dump whatever got written for easier debugging.
		if entries, readErr := os.ReadDir(exampleDir); readErr == nil {
			for _, e := range entries {
				if !strings.HasSuffix(e.Name(), "_fmt.go") && !strings.HasSuffix(e.Name(), ".unformatted.go") {
					continue
				}

				p := filepath.Join(exampleDir, e.Name())
				if fb, rerr := os.ReadFile(p); rerr == nil {
					t.Logf("generated file %s:\n%s", p, string(fb))
				}
			}
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	check := exec.CommandContext(t.Context(), "go", "run", "./cmd/fmtgen", "check", genArgs[0], genArgs[1])
	check.Dir = root

	b, err = check.CombinedOutput()
	if err != nil {
		t.Fatalf("check after gen failed: %v\n%s", err, string(b))
	}

	test := exec.CommandContext(t.Context(), "go", "test", "-tags", exampleTag, "-count=1", "./examples/"+exampleName)
	test.Dir = root

	b, err = test.CombinedOutput()
	if err != nil {
		t.Fatalf("example tests failed: %v\n%s", err, string(b))
	}
}

func removeGenerated(t *testing.T, dir string) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "*_fmt.go"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}

	for _, m := range matches {
		_ = os.Remove(m)
	}
}
