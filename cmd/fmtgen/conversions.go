package main

import (
	"fmt"
	"strings"

	"fmtgen/internal/registry"
)

func runConversions(e *env, args []string) error {
	flagSet := newCommandFlags(e, "conversions")
	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	for _, rule := range registry.Default().Rules() {
		verbs := "%" + string(rule.Conversion)
		if rule.UpperCase {
			verbs += " %" + strings.ToUpper(string(rule.Conversion))
		}

		kinds := make([]string, len(rule.Kinds))
		for i, k := range rule.Kinds {
			kinds[i] = k.Name()
		}

		fmt.Fprintf(e.stdout, "%s %-36s %s\n", headingStyle.Render(fmt.Sprintf("%-6s", verbs)), strings.Join(kinds, "|"), rule.Doc)
	}

	return nil
}
