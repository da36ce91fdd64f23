package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dyluth/blockkit/internal/config"
)

// CheckExisting returns an error naming any scaffold file already present in dir
func CheckExisting(dir string) error {
	var existing []string
	for _, path := range []string{config.DefaultPath, ExamplePayload} {
		if _, err := os.Stat(filepath.Join(dir, path)); err == nil {
			existing = append(existing, path)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("project already initialized\n\nFound existing")
	if len(existing) == 1 {
		fmt.Fprintf(&b, ": %s\n", existing[0])
	} else {
		b.WriteString(" files:\n")
		for _, file := range existing {
			fmt.Fprintf(&b, "  - %s\n", file)
		}
	}
	b.WriteString("\nUse 'blockkit init --force' to overwrite them")

	return fmt.Errorf("%s", b.String())
}
