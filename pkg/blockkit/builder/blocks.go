package builder

import (
	"fmt"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// BlocksBuilder builds a whole message: fallback text plus ordered blocks.
type BlocksBuilder struct {
	text   string
	blocks []BlockBuilder
}

// NewBlocks starts an empty message builder.
func NewBlocks() *BlocksBuilder {
	return &BlocksBuilder{}
}

// Text sets the notification fallback text.
func (b *BlocksBuilder) Text(text string) *BlocksBuilder {
	b.text = text
	return b
}

// Add appends any block builder.
func (b *BlocksBuilder) Add(blocks ...BlockBuilder) *BlocksBuilder {
	b.blocks = append(b.blocks, blocks...)
	return b
}

// Actions appends an actions block configured by configure.
func (b *BlocksBuilder) Actions(configure func(*ActionsBuilder)) *BlocksBuilder {
	ab := NewActions()
	configure(ab)
	return b.Add(ab)
}

// Section appends a section block configured by configure.
func (b *BlocksBuilder) Section(configure func(*SectionBuilder)) *BlocksBuilder {
	sb := NewSection()
	configure(sb)
	return b.Add(sb)
}

// Context appends a context block configured by configure.
func (b *BlocksBuilder) Context(configure func(*ContextBuilder)) *BlocksBuilder {
	cb := NewContext()
	configure(cb)
	return b.Add(cb)
}

// Header appends a header block.
func (b *BlocksBuilder) Header(text string, opts ...PlainTextOption) *BlocksBuilder {
	return b.Add(NewHeader(text, opts...))
}

// Divider appends a divider.
func (b *BlocksBuilder) Divider() *BlocksBuilder {
	return b.Add(NewDivider())
}

// Build finalizes every block in order and validates the resulting message.
func (b *BlocksBuilder) Build() (blockkit.Message, error) {
	blocks := make(blockkit.Blocks, 0, len(b.blocks))
	for i, bb := range b.blocks {
		block, err := bb.BuildBlock()
		if err != nil {
			return blockkit.Message{}, fmt.Errorf("blocks[%d]: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	msg := blockkit.Message{Text: b.text, Blocks: blocks}
	if err := msg.Validate(); err != nil {
		return blockkit.Message{}, err
	}
	return msg, nil
}
