package puzzle

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed builtins/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded definition with the given name.
func Builtin(name string) (*Definition, error) {
	data, err := builtinFS.ReadFile("builtins/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown builtin puzzle %q (available: %s)",
			name, strings.Join(BuiltinNames(), ", "))
	}
	def, err := Parse(data)
	if err != nil {
		// Embedded definitions are validated by tests; a parse failure
		// here is a packaging defect.
		return nil, fmt.Errorf("builtin puzzle %q: %w", name, err)
	}
	return def, nil
}

// BuiltinNames lists the embedded definitions in sorted order.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtins")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
