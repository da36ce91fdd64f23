package filter

import (
	"path/filepath"

	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/dyluth/blockkit/pkg/store"
)

// Criteria defines filtering criteria for templates.
// All filters are ANDed together - a template must match ALL criteria to pass.
type Criteria struct {
	SinceTimestampMs int64              // Unix timestamp in milliseconds, 0 = no filter
	UntilTimestampMs int64              // Unix timestamp in milliseconds, 0 = no filter
	NameGlob         string             // Glob pattern for template name, empty = no filter
	BlockType        blockkit.BlockType // Payload must contain this block type, empty = no filter
}

// Matches returns true if the template matches all filter criteria.
// Empty/zero criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(t *store.Template) bool {
	if c.SinceTimestampMs > 0 && t.CreatedAtMs < c.SinceTimestampMs {
		return false
	}
	if c.UntilTimestampMs > 0 && t.CreatedAtMs > c.UntilTimestampMs {
		return false
	}

	if c.NameGlob != "" {
		matched, err := filepath.Match(c.NameGlob, t.Name)
		if err != nil || !matched {
			return false
		}
	}

	if c.BlockType != "" && !containsBlockType(t, c.BlockType) {
		return false
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return c.SinceTimestampMs > 0 ||
		c.UntilTimestampMs > 0 ||
		c.NameGlob != "" ||
		c.BlockType != ""
}

// Apply returns the templates that match, preserving order.
func (c *Criteria) Apply(templates []*store.Template) []*store.Template {
	matched := make([]*store.Template, 0, len(templates))
	for _, t := range templates {
		if c.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

func containsBlockType(t *store.Template, want blockkit.BlockType) bool {
	for _, bt := range t.BlockTypes() {
		if bt == want {
			return true
		}
	}
	return false
}
