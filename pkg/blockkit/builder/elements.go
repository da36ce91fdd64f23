package builder

import (
	"fmt"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// ElementsBuilder accumulates element builders. Built elements keep call order,
// which is the order the platform renders them in.
type ElementsBuilder struct {
	builders []ElementBuilder
}

// Button appends a button labelled text, configured by configure.
func (b *ElementsBuilder) Button(text string, configure ...func(*ButtonBuilder)) *ElementsBuilder {
	bb := NewButton(text)
	for _, c := range configure {
		c(bb)
	}
	return b.Add(bb)
}

// Add appends any element builder.
func (b *ElementsBuilder) Add(e ElementBuilder) *ElementsBuilder {
	b.builders = append(b.builders, e)
	return b
}

// Build finalizes every element in order. An empty builder yields an empty, non-nil slice.
func (b *ElementsBuilder) Build() ([]blockkit.Element, error) {
	out := make([]blockkit.Element, 0, len(b.builders))
	for i, eb := range b.builders {
		e, err := eb.BuildElement()
		if err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
