package builder

import (
	"fmt"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// OptionBuilder builds a single option. Text is plain unless Markdown is called.
type OptionBuilder struct {
	text        string
	markdown    bool
	value       string
	description *PlainTextBuilder
	url         string
}

// NewOption starts an option labelled text that reports value when chosen.
func NewOption(text, value string) *OptionBuilder {
	return &OptionBuilder{text: text, value: value}
}

// Markdown renders the option text as mrkdwn. Only checkboxes and radio buttons accept this.
func (b *OptionBuilder) Markdown() *OptionBuilder {
	b.markdown = true
	return b
}

// Description sets the secondary line under the option text.
func (b *OptionBuilder) Description(text string, opts ...PlainTextOption) *OptionBuilder {
	b.description = plainText(text, opts)
	return b
}

// URL is only honoured in overflow menus.
func (b *OptionBuilder) URL(url string) *OptionBuilder {
	b.url = url
	return b
}

// Build validates and returns the option.
func (b *OptionBuilder) Build() (blockkit.Option, error) {
	var text blockkit.Text = blockkit.NewPlainText(b.text)
	if b.markdown {
		text = blockkit.NewMarkdown(b.text)
	}
	o := blockkit.Option{
		Text:        text,
		Value:       b.value,
		Description: optionalPlainText(b.description),
		URL:         b.url,
	}
	if err := o.Validate(); err != nil {
		return blockkit.Option{}, err
	}
	return o, nil
}

// optionList accumulates options in call order.
type optionList []*OptionBuilder

func (l *optionList) add(text, value string, configure []func(*OptionBuilder)) {
	ob := NewOption(text, value)
	for _, c := range configure {
		c(ob)
	}
	*l = append(*l, ob)
}

// build returns nil for an empty list so optional option lists stay off the wire.
func (l optionList) build(path string) ([]blockkit.Option, error) {
	if len(l) == 0 {
		return nil, nil
	}
	out := make([]blockkit.Option, 0, len(l))
	for i, ob := range l {
		o, err := ob.Build()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", path, i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// pick returns the built options whose values appear in values, in the order given.
func pick(node string, options []blockkit.Option, values []string) ([]blockkit.Option, error) {
	if len(values) == 0 {
		return nil, nil
	}
	byValue := make(map[string]blockkit.Option, len(options))
	for _, o := range options {
		byValue[o.Value] = o
	}
	out := make([]blockkit.Option, 0, len(values))
	for _, v := range values {
		o, ok := byValue[v]
		if !ok {
			return nil, blockkit.Conflict(node, fmt.Sprintf("no option with value %q", v), "initial_option")
		}
		out = append(out, o)
	}
	return out, nil
}

// OptionGroupBuilder builds a labelled group of options for static selects.
type OptionGroupBuilder struct {
	label   *PlainTextBuilder
	options optionList
}

// Option appends an option to the group.
func (b *OptionGroupBuilder) Option(text, value string, configure ...func(*OptionBuilder)) *OptionGroupBuilder {
	b.options.add(text, value, configure)
	return b
}

// Build validates and returns the option group.
func (b *OptionGroupBuilder) Build() (blockkit.OptionGroup, error) {
	options, err := b.options.build("options")
	if err != nil {
		return blockkit.OptionGroup{}, err
	}
	g := blockkit.OptionGroup{Label: b.label.Build(), Options: options}
	if err := g.Validate(); err != nil {
		return blockkit.OptionGroup{}, err
	}
	return g, nil
}
