package builder

import (
	"fmt"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// BlockBuilder is implemented by every block builder.
type BlockBuilder interface {
	BuildBlock() (blockkit.Block, error)
}

// ActionsBuilder builds an actions block.
type ActionsBuilder struct {
	blockID  string
	elements ElementsBuilder
}

// NewActions starts an empty actions block builder.
func NewActions() *ActionsBuilder {
	return &ActionsBuilder{}
}

// BlockID sets the block identifier. Empty leaves it to the platform.
func (b *ActionsBuilder) BlockID(id string) *ActionsBuilder {
	b.blockID = id
	return b
}

// Elements configures the block's elements. Repeated calls append.
func (b *ActionsBuilder) Elements(configure func(*ElementsBuilder)) *ActionsBuilder {
	configure(&b.elements)
	return b
}

// Build fails only if an element fails to build. Zero elements is valid.
func (b *ActionsBuilder) Build() (blockkit.ActionsBlock, error) {
	elements, err := b.elements.Build()
	if err != nil {
		return blockkit.ActionsBlock{}, err
	}
	block := blockkit.NewActionsBlock(b.blockID, elements...)
	if err := block.Validate(); err != nil {
		return blockkit.ActionsBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *ActionsBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// ContextBuilder builds a context block of images and texts.
type ContextBuilder struct {
	blockID  string
	elements []func() (blockkit.ContextElement, error)
}

// NewContext starts an empty context block builder.
func NewContext() *ContextBuilder {
	return &ContextBuilder{}
}

// BlockID sets the block identifier.
func (b *ContextBuilder) BlockID(id string) *ContextBuilder {
	b.blockID = id
	return b
}

// Text appends a text object of either variant.
func (b *ContextBuilder) Text(t TextBuilder) *ContextBuilder {
	b.elements = append(b.elements, func() (blockkit.ContextElement, error) {
		return t.BuildText().(blockkit.ContextElement), nil
	})
	return b
}

// Markdown appends a mrkdwn text.
func (b *ContextBuilder) Markdown(text string) *ContextBuilder {
	return b.Text(NewMarkdown(text))
}

// PlainText appends a plain text.
func (b *ContextBuilder) PlainText(text string, opts ...PlainTextOption) *ContextBuilder {
	return b.Text(plainText(text, opts))
}

// Image appends a small image.
func (b *ContextBuilder) Image(img *ImageElementBuilder) *ContextBuilder {
	b.elements = append(b.elements, func() (blockkit.ContextElement, error) {
		return img.Build()
	})
	return b
}

// Build validates and returns the context block.
func (b *ContextBuilder) Build() (blockkit.ContextBlock, error) {
	elements := make([]blockkit.ContextElement, 0, len(b.elements))
	for i, build := range b.elements {
		e, err := build()
		if err != nil {
			return blockkit.ContextBlock{}, fmt.Errorf("elements[%d]: %w", i, err)
		}
		elements = append(elements, e)
	}
	block := blockkit.ContextBlock{BlockID: b.blockID, Elements: elements}
	if err := block.Validate(); err != nil {
		return blockkit.ContextBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *ContextBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// DividerBuilder builds a divider.
type DividerBuilder struct {
	blockID string
}

// NewDivider starts an empty divider builder.
func NewDivider() *DividerBuilder {
	return &DividerBuilder{}
}

// BlockID sets the block identifier.
func (b *DividerBuilder) BlockID(id string) *DividerBuilder {
	b.blockID = id
	return b
}

// Build never fails.
func (b *DividerBuilder) Build() blockkit.DividerBlock {
	return blockkit.DividerBlock{BlockID: b.blockID}
}

// BuildBlock implements BlockBuilder.
func (b *DividerBuilder) BuildBlock() (blockkit.Block, error) { return b.Build(), nil }

// HeaderBuilder builds a header.
type HeaderBuilder struct {
	blockID string
	text    *PlainTextBuilder
}

// NewHeader starts a header block with its text.
func NewHeader(text string, opts ...PlainTextOption) *HeaderBuilder {
	return &HeaderBuilder{text: plainText(text, opts)}
}

// BlockID sets the block identifier.
func (b *HeaderBuilder) BlockID(id string) *HeaderBuilder {
	b.blockID = id
	return b
}

// Build validates and returns the header block.
func (b *HeaderBuilder) Build() (blockkit.HeaderBlock, error) {
	block := blockkit.HeaderBlock{BlockID: b.blockID, Text: b.text.Build()}
	if err := block.Validate(); err != nil {
		return blockkit.HeaderBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *HeaderBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// SectionBuilder builds either section shape: text with an optional accessory, or
// a fields grid. Setting both an accessory and fields records a conflict that Build returns.
type SectionBuilder struct {
	blockID   string
	text      TextBuilder
	accessory ElementBuilder
	fields    []TextBuilder
	err       error
}

// NewSection starts an empty section block builder.
func NewSection() *SectionBuilder {
	return &SectionBuilder{}
}

// BlockID sets the block identifier.
func (b *SectionBuilder) BlockID(id string) *SectionBuilder {
	b.blockID = id
	return b
}

// Text sets the section text from either text builder.
func (b *SectionBuilder) Text(t TextBuilder) *SectionBuilder {
	b.text = t
	return b
}

// Markdown sets mrkdwn section text.
func (b *SectionBuilder) Markdown(text string) *SectionBuilder {
	return b.Text(NewMarkdown(text))
}

// PlainText sets plain section text.
func (b *SectionBuilder) PlainText(text string, opts ...PlainTextOption) *SectionBuilder {
	return b.Text(plainText(text, opts))
}

// Accessory sets the element shown beside the text.
func (b *SectionBuilder) Accessory(e ElementBuilder) *SectionBuilder {
	if len(b.fields) > 0 {
		b.conflict()
	}
	b.accessory = e
	return b
}

// Field appends a grid cell.
func (b *SectionBuilder) Field(t TextBuilder) *SectionBuilder {
	if b.accessory != nil {
		b.conflict()
	}
	b.fields = append(b.fields, t)
	return b
}

func (b *SectionBuilder) conflict() {
	if b.err == nil {
		b.err = blockkit.Conflict(string(blockkit.BlockTypeSection),
			"fields and accessory are mutually exclusive", "fields", "accessory")
	}
}

// Build returns a blockkit.SectionBlock or, when fields were added, a blockkit.FieldsSectionBlock.
func (b *SectionBuilder) Build() (blockkit.Block, error) {
	if b.err != nil {
		return nil, b.err
	}
	var text blockkit.Text
	if b.text != nil {
		text = b.text.BuildText()
	}

	if len(b.fields) > 0 {
		fields := make([]blockkit.Text, 0, len(b.fields))
		for _, f := range b.fields {
			fields = append(fields, f.BuildText())
		}
		block := blockkit.FieldsSectionBlock{BlockID: b.blockID, Text: text, Fields: fields}
		if err := block.Validate(); err != nil {
			return nil, err
		}
		return block, nil
	}

	block := blockkit.SectionBlock{BlockID: b.blockID, Text: text}
	if b.accessory != nil {
		accessory, err := b.accessory.BuildElement()
		if err != nil {
			return nil, fmt.Errorf("accessory: %w", err)
		}
		block.Accessory = accessory
	}
	if err := block.Validate(); err != nil {
		return nil, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *SectionBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// ImageBuilder builds an image block from a URL or an uploaded file, never both.
type ImageBuilder struct {
	blockID string
	altText string
	source  imageSource
	title   *PlainTextBuilder
}

// NewImage starts an image block with its alt text.
func NewImage(altText string) *ImageBuilder {
	return &ImageBuilder{altText: altText}
}

// BlockID sets the block identifier.
func (b *ImageBuilder) BlockID(id string) *ImageBuilder {
	b.blockID = id
	return b
}

// URL sources the image from a public URL.
func (b *ImageBuilder) URL(url string) *ImageBuilder {
	b.source.setURL(string(blockkit.BlockTypeImage), url)
	return b
}

// SlackFileID sources the image from an uploaded file by ID.
func (b *ImageBuilder) SlackFileID(id string) *ImageBuilder {
	b.source.setFile(string(blockkit.BlockTypeImage), blockkit.SlackFile{ID: id})
	return b
}

// SlackFileURL sources the image from an uploaded file by URL.
func (b *ImageBuilder) SlackFileURL(url string) *ImageBuilder {
	b.source.setFile(string(blockkit.BlockTypeImage), blockkit.SlackFile{URL: url})
	return b
}

// Title sets the caption shown above the image.
func (b *ImageBuilder) Title(text string, opts ...PlainTextOption) *ImageBuilder {
	b.title = plainText(text, opts)
	return b
}

// Build validates and returns the image block.
func (b *ImageBuilder) Build() (blockkit.ImageBlock, error) {
	if b.source.err != nil {
		return blockkit.ImageBlock{}, b.source.err
	}
	block := blockkit.ImageBlock{
		BlockID:   b.blockID,
		AltText:   b.altText,
		ImageURL:  b.source.url,
		SlackFile: b.source.slackFile,
		Title:     optionalPlainText(b.title),
	}
	if err := block.Validate(); err != nil {
		return blockkit.ImageBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *ImageBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// InputBuilder builds an input block around one input-capable element.
type InputBuilder struct {
	blockID        string
	label          *PlainTextBuilder
	element        ElementBuilder
	hint           *PlainTextBuilder
	optional       *bool
	dispatchAction *bool
}

// NewInput starts an input block labelled label around element.
func NewInput(label string, element ElementBuilder) *InputBuilder {
	return &InputBuilder{label: NewPlainText(label), element: element}
}

// BlockID sets the block identifier.
func (b *InputBuilder) BlockID(id string) *InputBuilder {
	b.blockID = id
	return b
}

// Hint sets the help text shown below the input.
func (b *InputBuilder) Hint(text string, opts ...PlainTextOption) *InputBuilder {
	b.hint = plainText(text, opts)
	return b
}

// Optional allows the enclosing form to be submitted without this input.
func (b *InputBuilder) Optional(optional bool) *InputBuilder {
	b.optional = &optional
	return b
}

// DispatchAction makes the element send block_actions payloads while editing.
func (b *InputBuilder) DispatchAction(dispatch bool) *InputBuilder {
	b.dispatchAction = &dispatch
	return b
}

// Build validates and returns the input block.
func (b *InputBuilder) Build() (blockkit.InputBlock, error) {
	block := blockkit.InputBlock{
		BlockID:        b.blockID,
		Label:          b.label.Build(),
		Hint:           optionalPlainText(b.hint),
		Optional:       b.optional,
		DispatchAction: b.dispatchAction,
	}
	if b.element != nil {
		element, err := b.element.BuildElement()
		if err != nil {
			return blockkit.InputBlock{}, fmt.Errorf("element: %w", err)
		}
		block.Element = element
	}
	if err := block.Validate(); err != nil {
		return blockkit.InputBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *InputBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// VideoBuilder builds a video block.
type VideoBuilder struct {
	block       blockkit.VideoBlock
	description *PlainTextBuilder
}

// NewVideo starts a video block with its required fields.
func NewVideo(title, altText, videoURL, thumbnailURL string) *VideoBuilder {
	return &VideoBuilder{block: blockkit.VideoBlock{
		Title:        blockkit.NewPlainText(title),
		AltText:      altText,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
	}}
}

// BlockID sets the block identifier.
func (b *VideoBuilder) BlockID(id string) *VideoBuilder {
	b.block.BlockID = id
	return b
}

// AuthorName credits the video author.
func (b *VideoBuilder) AuthorName(name string) *VideoBuilder {
	b.block.AuthorName = name
	return b
}

// Description sets the text shown under the title.
func (b *VideoBuilder) Description(text string, opts ...PlainTextOption) *VideoBuilder {
	b.description = plainText(text, opts)
	return b
}

// Provider names the hosting service and its icon.
func (b *VideoBuilder) Provider(name, iconURL string) *VideoBuilder {
	b.block.ProviderName = name
	b.block.ProviderIconURL = iconURL
	return b
}

// TitleURL makes the title a link.
func (b *VideoBuilder) TitleURL(url string) *VideoBuilder {
	b.block.TitleURL = url
	return b
}

// Build validates and returns the video block.
func (b *VideoBuilder) Build() (blockkit.VideoBlock, error) {
	block := b.block
	block.Description = optionalPlainText(b.description)
	if err := block.Validate(); err != nil {
		return blockkit.VideoBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *VideoBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }

// FileBuilder builds a remote file block.
type FileBuilder struct {
	blockID    string
	externalID string
}

// NewFile starts a remote file block for externalID.
func NewFile(externalID string) *FileBuilder {
	return &FileBuilder{externalID: externalID}
}

// BlockID sets the block identifier.
func (b *FileBuilder) BlockID(id string) *FileBuilder {
	b.blockID = id
	return b
}

// Build validates and returns the file block.
func (b *FileBuilder) Build() (blockkit.FileBlock, error) {
	block := blockkit.FileBlock{BlockID: b.blockID, ExternalID: b.externalID, Source: blockkit.FileSourceRemote}
	if err := block.Validate(); err != nil {
		return blockkit.FileBlock{}, err
	}
	return block, nil
}

// BuildBlock implements BlockBuilder.
func (b *FileBuilder) BuildBlock() (blockkit.Block, error) { return b.Build() }
