package builder

import "github.com/dyluth/blockkit/pkg/blockkit"

// TextBuilder builds either text variant.
type TextBuilder interface {
	BuildText() blockkit.Text
}

// PlainTextBuilder builds a plain_text object. The text is fixed at construction.
type PlainTextBuilder struct {
	text  string
	emoji *bool
}

// NewPlainText starts a plain text object.
func NewPlainText(text string) *PlainTextBuilder {
	return &PlainTextBuilder{text: text}
}

// Emoji sets whether :emoji: codes are rendered.
func (b *PlainTextBuilder) Emoji(emoji bool) *PlainTextBuilder {
	b.emoji = &emoji
	return b
}

// Build never fails.
func (b *PlainTextBuilder) Build() blockkit.PlainText {
	return blockkit.PlainText{Text: b.text, Emoji: b.emoji}
}

// BuildText implements TextBuilder.
func (b *PlainTextBuilder) BuildText() blockkit.Text { return b.Build() }

// MarkdownBuilder builds a mrkdwn object. The text is fixed at construction.
type MarkdownBuilder struct {
	text     string
	verbatim *bool
}

// NewMarkdown starts a mrkdwn object.
func NewMarkdown(text string) *MarkdownBuilder {
	return &MarkdownBuilder{text: text}
}

// Verbatim disables automatic linking of URLs, mentions and channel names.
func (b *MarkdownBuilder) Verbatim(verbatim bool) *MarkdownBuilder {
	b.verbatim = &verbatim
	return b
}

// Build never fails.
func (b *MarkdownBuilder) Build() blockkit.Markdown {
	return blockkit.Markdown{Text: b.text, Verbatim: b.verbatim}
}

// BuildText implements TextBuilder.
func (b *MarkdownBuilder) BuildText() blockkit.Text { return b.Build() }

// PlainTextOption configures a nested plain text object.
type PlainTextOption func(*PlainTextBuilder)

// Emoji renders :emoji: codes in a nested plain text object.
func Emoji(emoji bool) PlainTextOption {
	return func(b *PlainTextBuilder) {
		b.Emoji(emoji)
	}
}

func plainText(text string, opts []PlainTextOption) *PlainTextBuilder {
	b := NewPlainText(text)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// optionalPlainText builds a nested plain text, or nil if it was never set.
func optionalPlainText(b *PlainTextBuilder) *blockkit.PlainText {
	if b == nil {
		return nil
	}
	pt := b.Build()
	return &pt
}
