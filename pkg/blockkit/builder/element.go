package builder

import (
	"fmt"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// ElementBuilder is implemented by every element builder.
type ElementBuilder interface {
	BuildElement() (blockkit.Element, error)
}

// ButtonBuilder builds a button. The text is required at construction.
type ButtonBuilder struct {
	actionID           string
	text               *PlainTextBuilder
	url                string
	value              string
	style              blockkit.Style
	confirm            func(*ConfirmationDialogBuilder)
	focusOnLoad        *bool
	accessibilityLabel string
}

// NewButton starts a button labelled text.
func NewButton(text string, opts ...PlainTextOption) *ButtonBuilder {
	return &ButtonBuilder{text: plainText(text, opts)}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *ButtonBuilder) ActionID(id string) *ButtonBuilder {
	b.actionID = id
	return b
}

// Text replaces the button label.
func (b *ButtonBuilder) Text(text string, opts ...PlainTextOption) *ButtonBuilder {
	b.text = plainText(text, opts)
	return b
}

// URL makes the button open url in the user's browser.
func (b *ButtonBuilder) URL(url string) *ButtonBuilder {
	b.url = url
	return b
}

// Value is sent back in the interaction payload.
func (b *ButtonBuilder) Value(value string) *ButtonBuilder {
	b.value = value
	return b
}

// AccessibilityLabel sets the text read by screen readers.
func (b *ButtonBuilder) AccessibilityLabel(label string) *ButtonBuilder {
	b.accessibilityLabel = label
	return b
}

// Confirm attaches a confirmation dialog shown before the action is dispatched.
func (b *ButtonBuilder) Confirm(configure func(*ConfirmationDialogBuilder)) *ButtonBuilder {
	b.confirm = configure
	return b
}

// FocusOnLoad focuses the element when the view opens.
func (b *ButtonBuilder) FocusOnLoad(focus bool) *ButtonBuilder {
	b.focusOnLoad = &focus
	return b
}

// PrimaryStyle and DangerStyle overwrite each other; the last call wins.
func (b *ButtonBuilder) PrimaryStyle() *ButtonBuilder {
	b.style = blockkit.StylePrimary
	return b
}

// DangerStyle marks the button as destructive.
func (b *ButtonBuilder) DangerStyle() *ButtonBuilder {
	b.style = blockkit.StyleDanger
	return b
}

// Build fails with blockkit.ErrIncomplete when the text is empty or the nested
// confirmation dialog is missing a field.
func (b *ButtonBuilder) Build() (blockkit.Button, error) {
	confirm, err := buildConfirm(b.confirm)
	if err != nil {
		return blockkit.Button{}, fmt.Errorf("confirm: %w", err)
	}
	button := blockkit.Button{
		Actionable:         blockkit.Actionable{ActionID: b.actionID},
		Text:               b.text.Build(),
		URL:                b.url,
		Value:              b.value,
		Style:              b.style,
		Confirm:            confirm,
		FocusOnLoad:        b.focusOnLoad,
		AccessibilityLabel: b.accessibilityLabel,
	}
	if err := button.Validate(); err != nil {
		return blockkit.Button{}, err
	}
	return button, nil
}

// BuildElement implements ElementBuilder.
func (b *ButtonBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }

// imageSource tracks the two mutually exclusive ways of referencing an image.
type imageSource struct {
	url       string
	slackFile *blockkit.SlackFile
	err       error
}

func (s *imageSource) setURL(node, url string) {
	if s.slackFile != nil {
		s.conflict(node)
	}
	s.url = url
}

func (s *imageSource) setFile(node string, f blockkit.SlackFile) {
	if s.url != "" {
		s.conflict(node)
	}
	s.slackFile = &f
}

func (s *imageSource) conflict(node string) {
	if s.err == nil {
		s.err = blockkit.Conflict(node, "image_url and slack_file are mutually exclusive", "image_url", "slack_file")
	}
}

// ImageElementBuilder builds an image element for sections and context blocks.
type ImageElementBuilder struct {
	altText string
	source  imageSource
}

// NewImageElement starts an image element described by altText.
func NewImageElement(altText string) *ImageElementBuilder {
	return &ImageElementBuilder{altText: altText}
}

// URL sources the image from a public URL.
func (b *ImageElementBuilder) URL(url string) *ImageElementBuilder {
	b.source.setURL(string(blockkit.ElementTypeImage), url)
	return b
}

// SlackFileID references an uploaded file by ID.
func (b *ImageElementBuilder) SlackFileID(id string) *ImageElementBuilder {
	b.source.setFile(string(blockkit.ElementTypeImage), blockkit.SlackFile{ID: id})
	return b
}

// SlackFileURL references an uploaded file by its permalink.
func (b *ImageElementBuilder) SlackFileURL(url string) *ImageElementBuilder {
	b.source.setFile(string(blockkit.ElementTypeImage), blockkit.SlackFile{URL: url})
	return b
}

// Build validates and returns the image element.
func (b *ImageElementBuilder) Build() (blockkit.ImageElement, error) {
	if b.source.err != nil {
		return blockkit.ImageElement{}, b.source.err
	}
	e := blockkit.ImageElement{AltText: b.altText, ImageURL: b.source.url, SlackFile: b.source.slackFile}
	if err := e.Validate(); err != nil {
		return blockkit.ImageElement{}, err
	}
	return e, nil
}

// BuildElement implements ElementBuilder.
func (b *ImageElementBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }

// OverflowBuilder builds an overflow menu.
type OverflowBuilder struct {
	actionID string
	options  optionList
	confirm  func(*ConfirmationDialogBuilder)
}

// NewOverflow starts an empty overflow menu builder.
func NewOverflow() *OverflowBuilder {
	return &OverflowBuilder{}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *OverflowBuilder) ActionID(id string) *OverflowBuilder {
	b.actionID = id
	return b
}

// Option appends a menu entry.
func (b *OverflowBuilder) Option(text, value string, configure ...func(*OptionBuilder)) *OverflowBuilder {
	b.options.add(text, value, configure)
	return b
}

// Confirm attaches a confirmation dialog configured by configure.
func (b *OverflowBuilder) Confirm(configure func(*ConfirmationDialogBuilder)) *OverflowBuilder {
	b.confirm = configure
	return b
}

// Build validates and returns the overflow menu.
func (b *OverflowBuilder) Build() (blockkit.Overflow, error) {
	options, err := b.options.build("options")
	if err != nil {
		return blockkit.Overflow{}, err
	}
	confirm, err := buildConfirm(b.confirm)
	if err != nil {
		return blockkit.Overflow{}, fmt.Errorf("confirm: %w", err)
	}
	o := blockkit.Overflow{
		Actionable: blockkit.Actionable{ActionID: b.actionID},
		Options:    options,
		Confirm:    confirm,
	}
	if err := o.Validate(); err != nil {
		return blockkit.Overflow{}, err
	}
	return o, nil
}

// BuildElement implements ElementBuilder.
func (b *OverflowBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }
