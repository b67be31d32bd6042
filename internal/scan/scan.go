// Package scan lists folder contents for sequence analysis.
package scan

import (
	"fmt"
	"os"
)

// List returns the plain names of the regular files directly inside dir.
// Subdirectories, symlinks and other irregular entries are skipped and the
// walk does not recurse. Order is unspecified; the analyzer sorts where order
// matters.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing folder %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}
