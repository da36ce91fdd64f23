package store

import (
	"fmt"
	"regexp"

	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/google/uuid"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Template is one immutable, saved version of a named message.
type Template struct {
	ID          string           `json:"id"`            // UUID of this version
	Name        string           `json:"name"`          // Stable name shared by all versions
	Version     int              `json:"version"`       // Starts at 1, incremented per save
	Payload     blockkit.Message `json:"payload"`       // Validated message
	CreatedAtMs int64            `json:"created_at_ms"` // Unix milliseconds
}

// Validate checks that the template is well-formed before it is written.
func (t *Template) Validate() error {
	if !isValidUUID(t.ID) {
		return fmt.Errorf("invalid template ID: not a valid UUID")
	}

	if err := ValidateName(t.Name); err != nil {
		return err
	}

	if t.Version < 1 {
		return fmt.Errorf("invalid version: must be >= 1, got %d", t.Version)
	}

	if err := t.Payload.Validate(); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	return nil
}

// BlockTypes returns the distinct block types in the payload, in first-seen order.
func (t *Template) BlockTypes() []blockkit.BlockType {
	seen := make(map[blockkit.BlockType]bool)
	var types []blockkit.BlockType
	for _, b := range t.Payload.Blocks {
		bt := b.BlockType()
		if !seen[bt] {
			seen[bt] = true
			types = append(types, bt)
		}
	}
	return types
}

// ValidateName reports whether name can be used as a template name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid template name %q: must match %s", name, namePattern)
	}
	return nil
}

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
