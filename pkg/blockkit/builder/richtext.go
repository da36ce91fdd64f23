package builder

import "github.com/dyluth/blockkit/pkg/blockkit"

// RichTextBuilder builds a rich text block from sections, lists, code blocks and quotes.
type RichTextBuilder struct {
	blockID  string
	elements []blockkit.RichTextElement
}

// NewRichText starts an empty rich text block builder.
func NewRichText() *RichTextBuilder {
	return &RichTextBuilder{}
}

// BlockID sets the block identifier.
func (b *RichTextBuilder) BlockID(id string) *RichTextBuilder {
	b.blockID = id
	return b
}

// Section appends a paragraph.
func (b *RichTextBuilder) Section(configure func(*RichTextSectionBuilder)) *RichTextBuilder {
	s := &RichTextSectionBuilder{}
	configure(s)
	b.elements = append(b.elements, blockkit.RichTextSection{Elements: s.build()})
	return b
}

// List appends a bulleted or numbered list.
func (b *RichTextBuilder) List(style blockkit.RichTextListStyle, configure func(*RichTextListBuilder)) *RichTextBuilder {
	l := &RichTextListBuilder{list: blockkit.RichTextList{Style: style}}
	configure(l)
	l.list.Elements = l.items
	if l.list.Elements == nil {
		l.list.Elements = []blockkit.RichTextSection{}
	}
	b.elements = append(b.elements, l.list)
	return b
}

// Preformatted appends a code block.
func (b *RichTextBuilder) Preformatted(configure func(*RichTextSectionBuilder)) *RichTextBuilder {
	s := &RichTextSectionBuilder{}
	configure(s)
	b.elements = append(b.elements, blockkit.RichTextPreformatted{Elements: s.build()})
	return b
}

// Quote appends a block quote.
func (b *RichTextBuilder) Quote(configure func(*RichTextSectionBuilder)) *RichTextBuilder {
	s := &RichTextSectionBuilder{}
	configure(s)
	b.elements = append(b.elements, blockkit.RichTextQuote{Elements: s.build()})
	return b
}

// Build validates and returns the rich text block.
func (b *RichTextBuilder) Build() (blockkit.RichTextBlock, error) {
	elements := b.elements
	if elements == nil {
		elements = []blockkit.RichTextElement{}
	}
	block := blockkit.RichTextBlock{BlockID: b.blockID, Elements: elements}
	if err := block.Validate(); err != nil {
		return blockkit.RichTextBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *RichTextBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// RichTextSectionBuilder accumulates inline rich text content.
type RichTextSectionBuilder struct {
	elements []blockkit.RichTextSubElement
}

func (b *RichTextSectionBuilder) add(e blockkit.RichTextSubElement) *RichTextSectionBuilder {
	b.elements = append(b.elements, e)
	return b
}

// Text appends a run of text, optionally styled.
func (b *RichTextSectionBuilder) Text(text string, style ...blockkit.RichTextStyle) *RichTextSectionBuilder {
	t := blockkit.RichTextText{Text: text}
	if len(style) > 0 {
		t.Style = &style[0]
	}
	return b.add(t)
}

// Bold appends bold text.
func (b *RichTextSectionBuilder) Bold(text string) *RichTextSectionBuilder {
	return b.Text(text, blockkit.RichTextStyle{Bold: blockkit.Bool(true)})
}

// Italic appends italic text.
func (b *RichTextSectionBuilder) Italic(text string) *RichTextSectionBuilder {
	return b.Text(text, blockkit.RichTextStyle{Italic: blockkit.Bool(true)})
}

// Code appends inline code.
func (b *RichTextSectionBuilder) Code(text string) *RichTextSectionBuilder {
	return b.Text(text, blockkit.RichTextStyle{Code: blockkit.Bool(true)})
}

// Link appends a hyperlink. An empty text shows the URL itself.
func (b *RichTextSectionBuilder) Link(url, text string) *RichTextSectionBuilder {
	return b.add(blockkit.RichTextLink{URL: url, Text: text})
}

// Emoji appends an emoji by name.
func (b *RichTextSectionBuilder) Emoji(name string) *RichTextSectionBuilder {
	return b.add(blockkit.RichTextEmoji{Name: name})
}

// Channel appends a channel mention.
func (b *RichTextSectionBuilder) Channel(id string) *RichTextSectionBuilder {
	return b.add(blockkit.RichTextChannel{ChannelID: id})
}

// User appends a user mention.
func (b *RichTextSectionBuilder) User(id string) *RichTextSectionBuilder {
	return b.add(blockkit.RichTextUser{UserID: id})
}

// UserGroup appends a user group mention.
func (b *RichTextSectionBuilder) UserGroup(id string) *RichTextSectionBuilder {
	return b.add(blockkit.RichTextUserGroup{UserGroupID: id})
}

func (b *RichTextSectionBuilder) build() []blockkit.RichTextSubElement {
	if b.elements == nil {
		return []blockkit.RichTextSubElement{}
	}
	return b.elements
}

// RichTextListBuilder accumulates list items.
type RichTextListBuilder struct {
	list  blockkit.RichTextList
	items []blockkit.RichTextSection
}

// Item appends one list entry.
func (b *RichTextListBuilder) Item(configure func(*RichTextSectionBuilder)) *RichTextListBuilder {
	s := &RichTextSectionBuilder{}
	configure(s)
	b.items = append(b.items, blockkit.RichTextSection{Elements: s.build()})
	return b
}

// Indent nests the list n levels deep.
func (b *RichTextListBuilder) Indent(n int) *RichTextListBuilder {
	b.list.Indent = &n
	return b
}

// Offset starts numbering of an ordered list after n.
func (b *RichTextListBuilder) Offset(n int) *RichTextListBuilder {
	b.list.Offset = &n
	return b
}

// Border sets the list border width.
func (b *RichTextListBuilder) Border(n int) *RichTextListBuilder {
	b.list.Border = &n
	return b
}
