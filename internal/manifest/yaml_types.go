package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a single string, optionally with kinds
// joined by '|', or a sequence of strings.
func (k *KindNames) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*k = splitKinds(str)

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		res := KindNames{}
		for _, s := range arr {
			res = append(res, splitKinds(s)...)
		}

		*k = res

		return nil

	default:
		return fmt.Errorf("line %d: expected kind name or list of kind names", node.Line)
	}
}

// MarshalYAML outputs the kinds joined by '|'.
func (k KindNames) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (k KindNames) String() string {
	return strings.Join(k, "|")
}

// ParseKindNames splits "int|int64" into its kind names.
func ParseKindNames(s string) KindNames {
	return splitKinds(s)
}

func splitKinds(s string) KindNames {
	res := KindNames{}

	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	return res
}
