package manifest

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// fingerprintInput is everything that changes the generated file of one
// declaration.
type fingerprintInput struct {
	Package     string      `yaml:"package"`
	Runtime     string      `yaml:"runtime"`
	Append      bool        `yaml:"append"`
	Declaration Declaration `yaml:"declaration"`
}

// Fingerprint returns a short blake3 digest of d within f. Generated files
// carry it so stale output can be detected without re-rendering.
func Fingerprint(f *File, d *Declaration) (string, error) {
	data, err := yaml.Marshal(fingerprintInput{
		Package:     f.Package,
		Runtime:     f.Runtime,
		Append:      f.AppendEnabled(),
		Declaration: *d,
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", d.Name, err)
	}

	sum := blake3.Sum256(data)

	return hex.EncodeToString(sum[:16]), nil
}
