package blockkit

import (
	"encoding/json"
	"fmt"
)

// BlockType is the wire discriminator of a block.
type BlockType string

const (
	BlockTypeActions  BlockType = "actions"
	BlockTypeContext  BlockType = "context"
	BlockTypeDivider  BlockType = "divider"
	BlockTypeFile     BlockType = "file"
	BlockTypeHeader   BlockType = "header"
	BlockTypeImage    BlockType = "image"
	BlockTypeInput    BlockType = "input"
	BlockTypeRichText BlockType = "rich_text"
	BlockTypeSection  BlockType = "section"
	BlockTypeVideo    BlockType = "video"
)

// BlockTypes lists every block variant in declaration order.
var BlockTypes = []BlockType{
	BlockTypeActions, BlockTypeContext, BlockTypeDivider, BlockTypeFile, BlockTypeHeader,
	BlockTypeImage, BlockTypeInput, BlockTypeRichText, BlockTypeSection, BlockTypeVideo,
}

// Validate checks if the BlockType is a valid enum value.
func (bt BlockType) Validate() error {
	if _, ok := blockDecoders[bt]; !ok {
		return unknownType("block", string(bt))
	}
	return nil
}

// Block is a top-level layout unit of a message. The set of implementations is closed.
// Both SectionBlock and FieldsSectionBlock report BlockTypeSection.
type Block interface {
	BlockType() BlockType
	ID() string
	Validate() error
	isBlock()
}

var blockDecoders map[BlockType]func([]byte) (Block, error)

func init() {
	blockDecoders = map[BlockType]func([]byte) (Block, error){
		BlockTypeActions:  decodeVariant[Block, ActionsBlock],
		BlockTypeContext:  decodeVariant[Block, ContextBlock],
		BlockTypeDivider:  decodeVariant[Block, DividerBlock],
		BlockTypeFile:     decodeVariant[Block, FileBlock],
		BlockTypeHeader:   decodeVariant[Block, HeaderBlock],
		BlockTypeImage:    decodeVariant[Block, ImageBlock],
		BlockTypeInput:    decodeVariant[Block, InputBlock],
		BlockTypeRichText: decodeVariant[Block, RichTextBlock],
		BlockTypeSection:  decodeSection,
		BlockTypeVideo:    decodeVariant[Block, VideoBlock],
	}
}

// DecodeBlock decodes and validates a single block of any variant.
func DecodeBlock(data []byte) (Block, error) {
	b, err := decodeBlockUnchecked(data)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeBlockUnchecked(data []byte) (Block, error) {
	typ, err := peekType(data)
	if err != nil {
		return nil, err
	}
	decode, ok := blockDecoders[BlockType(typ)]
	if !ok {
		return nil, unknownType("block", typ)
	}
	return decode(data)
}

// ActionsBlock holds interactive elements rendered left to right.
type ActionsBlock struct {
	BlockID  string    `json:"block_id,omitempty"`
	Elements []Element `json:"elements"`
}

// NewActionsBlock returns an actions block holding elements in order.
func NewActionsBlock(blockID string, elements ...Element) ActionsBlock {
	return ActionsBlock{BlockID: blockID, Elements: nonNil(elements)}
}

func (ActionsBlock) BlockType() BlockType { return BlockTypeActions }
func (b ActionsBlock) ID() string         { return b.BlockID }
func (ActionsBlock) isBlock()             {}

// Validate checks every element. Actions blocks only hold actionable elements.
func (b ActionsBlock) Validate() error {
	for i, e := range b.Elements {
		if _, ok := e.(ActionableElement); e != nil && !ok {
			return atIndex("elements", i, Conflict(string(BlockTypeActions),
				fmt.Sprintf("%s elements are not interactive", e.ElementType()), "elements"))
		}
	}
	return validateElements("elements", b.Elements)
}

func (b ActionsBlock) MarshalJSON() ([]byte, error) {
	type alias ActionsBlock
	b.Elements = nonNil(b.Elements)
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeActions), body, err)
}

func (b *ActionsBlock) UnmarshalJSON(data []byte) error {
	type alias ActionsBlock
	*b = ActionsBlock{}
	w := struct {
		Elements json.RawMessage `json:"elements"`
		*alias
	}{alias: (*alias)(b)}
	if err := untag(data, string(BlockTypeActions), &w); err != nil {
		return err
	}
	elements, err := decodeList(w.Elements, "elements", decodeElementUnchecked)
	if err != nil {
		return err
	}
	b.Elements = nonNil(elements)
	return nil
}

// ContextElement is an element allowed inside a context block: an image or a text object.
type ContextElement interface {
	Validate() error
	isContextElement()
}

func decodeContextElement(data []byte) (ContextElement, error) {
	typ, err := peekType(data)
	if err != nil {
		return nil, err
	}
	switch typ {
	case string(ElementTypeImage):
		var e ImageElement
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case string(TextTypePlain), string(TextTypeMarkdown):
		t, err := DecodeText(data)
		if err != nil {
			return nil, err
		}
		return t.(ContextElement), nil
	default:
		return nil, unknownType("context element", typ)
	}
}

// ContextBlock displays small images and text as supporting context.
type ContextBlock struct {
	BlockID  string           `json:"block_id,omitempty"`
	Elements []ContextElement `json:"elements"`
}

func (ContextBlock) BlockType() BlockType { return BlockTypeContext }
func (b ContextBlock) ID() string         { return b.BlockID }
func (ContextBlock) isBlock()             {}

// Validate checks every context element.
func (b ContextBlock) Validate() error {
	for i, e := range b.Elements {
		if e == nil {
			return atIndex("elements", i, Missing("context element", "type"))
		}
		if err := e.Validate(); err != nil {
			return atIndex("elements", i, err)
		}
	}
	return nil
}

func (b ContextBlock) MarshalJSON() ([]byte, error) {
	type alias ContextBlock
	b.Elements = nonNil(b.Elements)
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeContext), body, err)
}

func (b *ContextBlock) UnmarshalJSON(data []byte) error {
	type alias ContextBlock
	*b = ContextBlock{}
	w := struct {
		Elements json.RawMessage `json:"elements"`
		*alias
	}{alias: (*alias)(b)}
	if err := untag(data, string(BlockTypeContext), &w); err != nil {
		return err
	}
	elements, err := decodeList(w.Elements, "elements", decodeContextElement)
	if err != nil {
		return err
	}
	b.Elements = nonNil(elements)
	return nil
}

// DividerBlock is a horizontal rule.
type DividerBlock struct {
	BlockID string `json:"block_id,omitempty"`
}

func (DividerBlock) BlockType() BlockType { return BlockTypeDivider }
func (b DividerBlock) ID() string         { return b.BlockID }
func (DividerBlock) isBlock()             {}
func (DividerBlock) Validate() error      { return nil }

func (b DividerBlock) MarshalJSON() ([]byte, error) {
	type alias DividerBlock
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeDivider), body, err)
}

func (b *DividerBlock) UnmarshalJSON(data []byte) error {
	type alias DividerBlock
	return untag(data, string(BlockTypeDivider), (*alias)(b))
}

// FileSourceRemote is the only file block source the platform accepts.
const FileSourceRemote = "remote"

// FileBlock displays a remote file.
type FileBlock struct {
	BlockID    string `json:"block_id,omitempty"`
	ExternalID string `json:"external_id"`
	Source     string `json:"source"`
}

func (FileBlock) BlockType() BlockType { return BlockTypeFile }
func (b FileBlock) ID() string         { return b.BlockID }
func (FileBlock) isBlock()             {}

func (b FileBlock) Validate() error {
	var missing requiredFields
	missing.check(b.ExternalID != "", "external_id")
	missing.check(b.Source != "", "source")
	if err := missing.err(string(BlockTypeFile)); err != nil {
		return err
	}
	if b.Source != FileSourceRemote {
		return Conflict(string(BlockTypeFile), fmt.Sprintf("source must be %q", FileSourceRemote), "source")
	}
	return nil
}

func (b FileBlock) MarshalJSON() ([]byte, error) {
	type alias FileBlock
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeFile), body, err)
}

func (b *FileBlock) UnmarshalJSON(data []byte) error {
	type alias FileBlock
	return untag(data, string(BlockTypeFile), (*alias)(b))
}

// HeaderBlock is large bold plain text.
type HeaderBlock struct {
	BlockID string    `json:"block_id,omitempty"`
	Text    PlainText `json:"text"`
}

func (HeaderBlock) BlockType() BlockType { return BlockTypeHeader }
func (b HeaderBlock) ID() string         { return b.BlockID }
func (HeaderBlock) isBlock()             {}

func (b HeaderBlock) Validate() error {
	return at("text", b.Text.Validate())
}

func (b HeaderBlock) MarshalJSON() ([]byte, error) {
	type alias HeaderBlock
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeHeader), body, err)
}

func (b *HeaderBlock) UnmarshalJSON(data []byte) error {
	type alias HeaderBlock
	return untag(data, string(BlockTypeHeader), (*alias)(b))
}

// ImageBlock displays an image by URL or by platform file reference, never both.
type ImageBlock struct {
	BlockID   string     `json:"block_id,omitempty"`
	AltText   string     `json:"alt_text"`
	ImageURL  string     `json:"image_url,omitempty"`
	SlackFile *SlackFile `json:"slack_file,omitempty"`
	Title     *PlainText `json:"title,omitempty"`
}

func (ImageBlock) BlockType() BlockType { return BlockTypeImage }
func (b ImageBlock) ID() string         { return b.BlockID }
func (ImageBlock) isBlock()             {}

func (b ImageBlock) Validate() error {
	var missing requiredFields
	missing.check(b.AltText != "", "alt_text")
	if err := missing.err(string(BlockTypeImage)); err != nil {
		return err
	}
	if err := validateImageSource(string(BlockTypeImage), b.ImageURL, b.SlackFile); err != nil {
		return err
	}
	if b.Title != nil {
		return at("title", b.Title.Validate())
	}
	return nil
}

func (b ImageBlock) MarshalJSON() ([]byte, error) {
	type alias ImageBlock
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeImage), body, err)
}

func (b *ImageBlock) UnmarshalJSON(data []byte) error {
	type alias ImageBlock
	return untag(data, string(BlockTypeImage), (*alias)(b))
}

// inputElementTypes are the elements an input block may hold.
var inputElementTypes = map[ElementType]bool{
	ElementTypeCheckboxes:               true,
	ElementTypeDatePicker:               true,
	ElementTypeDatetimePicker:           true,
	ElementTypeEmailInput:               true,
	ElementTypeFileInput:                true,
	ElementTypeMultiStaticSelect:        true,
	ElementTypeMultiExternalSelect:      true,
	ElementTypeMultiUsersSelect:         true,
	ElementTypeMultiConversationsSelect: true,
	ElementTypeMultiChannelsSelect:      true,
	ElementTypeNumberInput:              true,
	ElementTypePlainTextInput:           true,
	ElementTypeRadioButtons:             true,
	ElementTypeRichTextInput:            true,
	ElementTypeStaticSelect:             true,
	ElementTypeExternalSelect:           true,
	ElementTypeUsersSelect:              true,
	ElementTypeConversationsSelect:      true,
	ElementTypeChannelsSelect:           true,
	ElementTypeTimepicker:               true,
	ElementTypeURLInput:                 true,
}

// InputBlock collects user input in modals and messages.
type InputBlock struct {
	BlockID        string     `json:"block_id,omitempty"`
	Label          PlainText  `json:"label"`
	Element        Element    `json:"element"`
	DispatchAction *bool      `json:"dispatch_action,omitempty"`
	Hint           *PlainText `json:"hint,omitempty"`
	Optional       *bool      `json:"optional,omitempty"`
}

func (InputBlock) BlockType() BlockType { return BlockTypeInput }
func (b InputBlock) ID() string         { return b.BlockID }
func (InputBlock) isBlock()             {}

func (b InputBlock) Validate() error {
	var missing requiredFields
	missing.check(b.Label.Text != "", "label")
	missing.check(b.Element != nil, "element")
	if err := missing.err(string(BlockTypeInput)); err != nil {
		return err
	}
	if !inputElementTypes[b.Element.ElementType()] {
		return Conflict(string(BlockTypeInput),
			fmt.Sprintf("%s cannot be used as an input element", b.Element.ElementType()), "element")
	}
	if err := at("element", b.Element.Validate()); err != nil {
		return err
	}
	if b.Hint != nil {
		return at("hint", b.Hint.Validate())
	}
	return nil
}

func (b InputBlock) MarshalJSON() ([]byte, error) {
	type alias InputBlock
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeInput), body, err)
}

func (b *InputBlock) UnmarshalJSON(data []byte) error {
	type alias InputBlock
	*b = InputBlock{}
	w := struct {
		Element json.RawMessage `json:"element"`
		*alias
	}{alias: (*alias)(b)}
	if err := untag(data, string(BlockTypeInput), &w); err != nil {
		return err
	}
	element, err := decodeOptionalElement(w.Element)
	if err != nil {
		return at("element", err)
	}
	b.Element = element
	return nil
}

// SectionBlock is text with an optional accessory element.
type SectionBlock struct {
	BlockID   string  `json:"block_id,omitempty"`
	Text      Text    `json:"text"`
	Accessory Element `json:"accessory,omitempty"`
}

func (SectionBlock) BlockType() BlockType { return BlockTypeSection }
func (b SectionBlock) ID() string         { return b.BlockID }
func (SectionBlock) isBlock()             {}

func (b SectionBlock) Validate() error {
	var missing requiredFields
	missing.check(b.Text != nil, "text")
	if err := missing.err(string(BlockTypeSection)); err != nil {
		return err
	}
	if err := at("text", b.Text.Validate()); err != nil {
		return err
	}
	if b.Accessory != nil {
		return at("accessory", b.Accessory.Validate())
	}
	return nil
}

func (b SectionBlock) MarshalJSON() ([]byte, error) {
	type alias SectionBlock
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeSection), body, err)
}

func (b *SectionBlock) UnmarshalJSON(data []byte) error {
	type alias SectionBlock
	*b = SectionBlock{}
	w := struct {
		Text      json.RawMessage `json:"text"`
		Accessory json.RawMessage `json:"accessory"`
		Fields    json.RawMessage `json:"fields"`
		*alias
	}{alias: (*alias)(b)}
	if err := untag(data, string(BlockTypeSection), &w); err != nil {
		return err
	}
	if !isAbsent(w.Fields) {
		return Conflict(string(BlockTypeSection), "fields belong to the fields shape", "fields")
	}
	text, err := decodeOptionalText(w.Text)
	if err != nil {
		return at("text", err)
	}
	accessory, err := decodeOptionalElement(w.Accessory)
	if err != nil {
		return at("accessory", err)
	}
	b.Text, b.Accessory = text, accessory
	return nil
}

// FieldsSectionBlock is a section rendered as a two-column grid of texts.
// It never carries an accessory.
type FieldsSectionBlock struct {
	BlockID string `json:"block_id,omitempty"`
	Text    Text   `json:"text,omitempty"`
	Fields  []Text `json:"fields"`
}

func (FieldsSectionBlock) BlockType() BlockType { return BlockTypeSection }
func (b FieldsSectionBlock) ID() string         { return b.BlockID }
func (FieldsSectionBlock) isBlock()             {}

func (b FieldsSectionBlock) Validate() error {
	var missing requiredFields
	missing.check(len(b.Fields) > 0, "fields")
	if err := missing.err(string(BlockTypeSection)); err != nil {
		return err
	}
	if b.Text != nil {
		if err := at("text", b.Text.Validate()); err != nil {
			return err
		}
	}
	for i, f := range b.Fields {
		if f == nil {
			return atIndex("fields", i, Missing("text", "type"))
		}
		if err := f.Validate(); err != nil {
			return atIndex("fields", i, err)
		}
	}
	return nil
}

func (b FieldsSectionBlock) MarshalJSON() ([]byte, error) {
	type alias FieldsSectionBlock
	b.Fields = nonNil(b.Fields)
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeSection), body, err)
}

func (b *FieldsSectionBlock) UnmarshalJSON(data []byte) error {
	type alias FieldsSectionBlock
	*b = FieldsSectionBlock{}
	w := struct {
		Text      json.RawMessage `json:"text"`
		Fields    json.RawMessage `json:"fields"`
		Accessory json.RawMessage `json:"accessory"`
		*alias
	}{alias: (*alias)(b)}
	if err := untag(data, string(BlockTypeSection), &w); err != nil {
		return err
	}
	if !isAbsent(w.Accessory) {
		return Conflict(string(BlockTypeSection), "fields and accessory are mutually exclusive", "fields", "accessory")
	}
	text, err := decodeOptionalText(w.Text)
	if err != nil {
		return at("text", err)
	}
	fields, err := decodeList(w.Fields, "fields", DecodeText)
	if err != nil {
		return err
	}
	b.Text, b.Fields = text, nonNil(fields)
	return nil
}

// decodeSection picks the section shape from the presence of "fields".
func decodeSection(data []byte) (Block, error) {
	var head struct {
		Fields json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	if isAbsent(head.Fields) {
		return decodeVariant[Block, SectionBlock](data)
	}
	return decodeVariant[Block, FieldsSectionBlock](data)
}

// VideoBlock embeds a video player.
type VideoBlock struct {
	BlockID         string     `json:"block_id,omitempty"`
	AltText         string     `json:"alt_text"`
	Title           PlainText  `json:"title"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	VideoURL        string     `json:"video_url"`
	AuthorName      string     `json:"author_name,omitempty"`
	Description     *PlainText `json:"description,omitempty"`
	ProviderIconURL string     `json:"provider_icon_url,omitempty"`
	ProviderName    string     `json:"provider_name,omitempty"`
	TitleURL        string     `json:"title_url,omitempty"`
}

func (VideoBlock) BlockType() BlockType { return BlockTypeVideo }
func (b VideoBlock) ID() string         { return b.BlockID }
func (VideoBlock) isBlock()             {}

func (b VideoBlock) Validate() error {
	var missing requiredFields
	missing.check(b.AltText != "", "alt_text")
	missing.check(b.Title.Text != "", "title")
	missing.check(b.ThumbnailURL != "", "thumbnail_url")
	missing.check(b.VideoURL != "", "video_url")
	if err := missing.err(string(BlockTypeVideo)); err != nil {
		return err
	}
	if b.Description != nil {
		return at("description", b.Description.Validate())
	}
	return nil
}

func (b VideoBlock) MarshalJSON() ([]byte, error) {
	type alias VideoBlock
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeVideo), body, err)
}

func (b *VideoBlock) UnmarshalJSON(data []byte) error {
	type alias VideoBlock
	return untag(data, string(BlockTypeVideo), (*alias)(b))
}
