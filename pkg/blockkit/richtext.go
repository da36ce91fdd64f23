package blockkit

import (
	"encoding/json"
	"fmt"
)

// RichTextElementType is the wire discriminator of a rich text block's children.
type RichTextElementType string

const (
	RichTextTypeSection      RichTextElementType = "rich_text_section"
	RichTextTypeList         RichTextElementType = "rich_text_list"
	RichTextTypePreformatted RichTextElementType = "rich_text_preformatted"
	RichTextTypeQuote        RichTextElementType = "rich_text_quote"
)

// RichTextSubElementType is the wire discriminator of inline rich text content.
type RichTextSubElementType string

const (
	RichTextSubTypeText      RichTextSubElementType = "text"
	RichTextSubTypeLink      RichTextSubElementType = "link"
	RichTextSubTypeEmoji     RichTextSubElementType = "emoji"
	RichTextSubTypeChannel   RichTextSubElementType = "channel"
	RichTextSubTypeUser      RichTextSubElementType = "user"
	RichTextSubTypeUserGroup RichTextSubElementType = "usergroup"
)

// RichTextListStyle selects bullets or numbering for a rich text list.
type RichTextListStyle string

const (
	RichTextListBullet  RichTextListStyle = "bullet"
	RichTextListOrdered RichTextListStyle = "ordered"
)

// Validate checks if the RichTextListStyle is a valid enum value.
func (s RichTextListStyle) Validate() error {
	switch s {
	case RichTextListBullet, RichTextListOrdered:
		return nil
	default:
		return fmt.Errorf("unknown list style: %q", s)
	}
}

// RichTextBlock holds formatted text as a tree of sections, lists, code and quotes.
type RichTextBlock struct {
	BlockID  string            `json:"block_id,omitempty"`
	Elements []RichTextElement `json:"elements"`
}

func (RichTextBlock) BlockType() BlockType { return BlockTypeRichText }
func (b RichTextBlock) ID() string         { return b.BlockID }
func (RichTextBlock) isBlock()             {}

func (b RichTextBlock) Validate() error {
	for i, e := range b.Elements {
		if e == nil {
			return atIndex("elements", i, Missing("rich text element", "type"))
		}
		if err := e.Validate(); err != nil {
			return atIndex("elements", i, err)
		}
	}
	return nil
}

func (b RichTextBlock) MarshalJSON() ([]byte, error) {
	type alias RichTextBlock
	b.Elements = nonNil(b.Elements)
	body, err := json.Marshal(alias(b))
	return tagged(string(BlockTypeRichText), body, err)
}

func (b *RichTextBlock) UnmarshalJSON(data []byte) error {
	type alias RichTextBlock
	*b = RichTextBlock{}
	w := struct {
		Elements json.RawMessage `json:"elements"`
		*alias
	}{alias: (*alias)(b)}
	if err := untag(data, string(BlockTypeRichText), &w); err != nil {
		return err
	}
	elements, err := decodeList(w.Elements, "elements", decodeRichTextElement)
	if err != nil {
		return err
	}
	b.Elements = nonNil(elements)
	return nil
}

// RichTextElement is a direct child of a rich text block. The set of implementations is closed.
type RichTextElement interface {
	RichTextElementType() RichTextElementType
	Validate() error
	isRichTextElement()
}

func decodeRichTextElement(data []byte) (RichTextElement, error) {
	typ, err := peekType(data)
	if err != nil {
		return nil, err
	}
	switch RichTextElementType(typ) {
	case RichTextTypeSection:
		return decodeVariant[RichTextElement, RichTextSection](data)
	case RichTextTypeList:
		return decodeVariant[RichTextElement, RichTextList](data)
	case RichTextTypePreformatted:
		return decodeVariant[RichTextElement, RichTextPreformatted](data)
	case RichTextTypeQuote:
		return decodeVariant[RichTextElement, RichTextQuote](data)
	default:
		return nil, unknownType("rich text element", typ)
	}
}

// RichTextSection is a paragraph of inline content.
type RichTextSection struct {
	Elements []RichTextSubElement `json:"elements"`
}

func (RichTextSection) RichTextElementType() RichTextElementType { return RichTextTypeSection }
func (RichTextSection) isRichTextElement()                       {}

func (s RichTextSection) Validate() error {
	return validateSubElements(s.Elements)
}

func (s RichTextSection) MarshalJSON() ([]byte, error) {
	type alias RichTextSection
	s.Elements = nonNil(s.Elements)
	body, err := json.Marshal(alias(s))
	return tagged(string(RichTextTypeSection), body, err)
}

func (s *RichTextSection) UnmarshalJSON(data []byte) error {
	elements, err := unmarshalInline(data, string(RichTextTypeSection), nil)
	if err != nil {
		return err
	}
	*s = RichTextSection{Elements: elements}
	return nil
}

// RichTextList is a bulleted or numbered list whose items are sections.
type RichTextList struct {
	Style    RichTextListStyle `json:"style"`
	Elements []RichTextSection `json:"elements"`
	Indent   *int              `json:"indent,omitempty"`
	Offset   *int              `json:"offset,omitempty"`
	Border   *int              `json:"border,omitempty"`
}

func (RichTextList) RichTextElementType() RichTextElementType { return RichTextTypeList }
func (RichTextList) isRichTextElement()                       {}

func (l RichTextList) Validate() error {
	if l.Style == "" {
		return Missing(string(RichTextTypeList), "style")
	}
	if err := l.Style.Validate(); err != nil {
		return Conflict(string(RichTextTypeList), err.Error(), "style")
	}
	for i, item := range l.Elements {
		if err := item.Validate(); err != nil {
			return atIndex("elements", i, err)
		}
	}
	return nil
}

func (l RichTextList) MarshalJSON() ([]byte, error) {
	type alias RichTextList
	l.Elements = nonNil(l.Elements)
	body, err := json.Marshal(alias(l))
	return tagged(string(RichTextTypeList), body, err)
}

func (l *RichTextList) UnmarshalJSON(data []byte) error {
	type alias RichTextList
	*l = RichTextList{}
	if err := untag(data, string(RichTextTypeList), (*alias)(l)); err != nil {
		return err
	}
	l.Elements = nonNil(l.Elements)
	return nil
}

// RichTextPreformatted is a code block.
type RichTextPreformatted struct {
	Elements []RichTextSubElement `json:"elements"`
	Border   *int                 `json:"border,omitempty"`
}

func (RichTextPreformatted) RichTextElementType() RichTextElementType {
	return RichTextTypePreformatted
}
func (RichTextPreformatted) isRichTextElement() {}

func (p RichTextPreformatted) Validate() error {
	return validateSubElements(p.Elements)
}

func (p RichTextPreformatted) MarshalJSON() ([]byte, error) {
	type alias RichTextPreformatted
	p.Elements = nonNil(p.Elements)
	body, err := json.Marshal(alias(p))
	return tagged(string(RichTextTypePreformatted), body, err)
}

func (p *RichTextPreformatted) UnmarshalJSON(data []byte) error {
	var border *int
	elements, err := unmarshalInline(data, string(RichTextTypePreformatted), &border)
	if err != nil {
		return err
	}
	*p = RichTextPreformatted{Elements: elements, Border: border}
	return nil
}

// RichTextQuote is a block quote.
type RichTextQuote struct {
	Elements []RichTextSubElement `json:"elements"`
	Border   *int                 `json:"border,omitempty"`
}

func (RichTextQuote) RichTextElementType() RichTextElementType { return RichTextTypeQuote }
func (RichTextQuote) isRichTextElement()                       {}

func (q RichTextQuote) Validate() error {
	return validateSubElements(q.Elements)
}

func (q RichTextQuote) MarshalJSON() ([]byte, error) {
	type alias RichTextQuote
	q.Elements = nonNil(q.Elements)
	body, err := json.Marshal(alias(q))
	return tagged(string(RichTextTypeQuote), body, err)
}

func (q *RichTextQuote) UnmarshalJSON(data []byte) error {
	var border *int
	elements, err := unmarshalInline(data, string(RichTextTypeQuote), &border)
	if err != nil {
		return err
	}
	*q = RichTextQuote{Elements: elements, Border: border}
	return nil
}

// unmarshalInline decodes the shared shape of sections, code blocks and quotes.
func unmarshalInline(data []byte, want string, border **int) ([]RichTextSubElement, error) {
	var w struct {
		Elements json.RawMessage `json:"elements"`
		Border   *int            `json:"border"`
	}
	if err := untag(data, want, &w); err != nil {
		return nil, err
	}
	if border != nil {
		*border = w.Border
	}
	elements, err := decodeList(w.Elements, "elements", decodeRichTextSubElement)
	if err != nil {
		return nil, err
	}
	return nonNil(elements), nil
}

// RichTextStyle is the inline style of text and links.
type RichTextStyle struct {
	Bold   *bool `json:"bold,omitempty"`
	Italic *bool `json:"italic,omitempty"`
	Strike *bool `json:"strike,omitempty"`
	Code   *bool `json:"code,omitempty"`
}

// RichTextMentionStyle is the inline style of channel, user and user group mentions.
type RichTextMentionStyle struct {
	Bold            *bool `json:"bold,omitempty"`
	Italic          *bool `json:"italic,omitempty"`
	Strike          *bool `json:"strike,omitempty"`
	Highlight       *bool `json:"highlight,omitempty"`
	ClientHighlight *bool `json:"client_highlight,omitempty"`
	Unlink          *bool `json:"unlink,omitempty"`
}

// RichTextSubElement is inline rich text content. The set of implementations is closed.
type RichTextSubElement interface {
	RichTextSubElementType() RichTextSubElementType
	Validate() error
	isRichTextSubElement()
}

var subElementDecoders = map[RichTextSubElementType]func([]byte) (RichTextSubElement, error){
	RichTextSubTypeText:      decodeVariant[RichTextSubElement, RichTextText],
	RichTextSubTypeLink:      decodeVariant[RichTextSubElement, RichTextLink],
	RichTextSubTypeEmoji:     decodeVariant[RichTextSubElement, RichTextEmoji],
	RichTextSubTypeChannel:   decodeVariant[RichTextSubElement, RichTextChannel],
	RichTextSubTypeUser:      decodeVariant[RichTextSubElement, RichTextUser],
	RichTextSubTypeUserGroup: decodeVariant[RichTextSubElement, RichTextUserGroup],
}

func decodeRichTextSubElement(data []byte) (RichTextSubElement, error) {
	typ, err := peekType(data)
	if err != nil {
		return nil, err
	}
	decode, ok := subElementDecoders[RichTextSubElementType(typ)]
	if !ok {
		return nil, unknownType("rich text sub-element", typ)
	}
	return decode(data)
}

func validateSubElements(elements []RichTextSubElement) error {
	for i, e := range elements {
		if e == nil {
			return atIndex("elements", i, Missing("rich text sub-element", "type"))
		}
		if err := e.Validate(); err != nil {
			return atIndex("elements", i, err)
		}
	}
	return nil
}

// RichTextText is a run of styled text.
type RichTextText struct {
	Text  string         `json:"text"`
	Style *RichTextStyle `json:"style,omitempty"`
}

func (RichTextText) RichTextSubElementType() RichTextSubElementType { return RichTextSubTypeText }
func (RichTextText) isRichTextSubElement()                          {}

func (t RichTextText) Validate() error {
	return Missing(string(RichTextSubTypeText), missingIf(t.Text == "", "text")...)
}

func (t RichTextText) MarshalJSON() ([]byte, error) {
	type alias RichTextText
	body, err := json.Marshal(alias(t))
	return tagged(string(RichTextSubTypeText), body, err)
}

func (t *RichTextText) UnmarshalJSON(data []byte) error {
	type alias RichTextText
	return untag(data, string(RichTextSubTypeText), (*alias)(t))
}

// RichTextLink is a hyperlink, optionally with display text.
type RichTextLink struct {
	URL    string         `json:"url"`
	Text   string         `json:"text,omitempty"`
	Unsafe *bool          `json:"unsafe,omitempty"`
	Style  *RichTextStyle `json:"style,omitempty"`
}

func (RichTextLink) RichTextSubElementType() RichTextSubElementType { return RichTextSubTypeLink }
func (RichTextLink) isRichTextSubElement()                          {}

func (l RichTextLink) Validate() error {
	return Missing(string(RichTextSubTypeLink), missingIf(l.URL == "", "url")...)
}

func (l RichTextLink) MarshalJSON() ([]byte, error) {
	type alias RichTextLink
	body, err := json.Marshal(alias(l))
	return tagged(string(RichTextSubTypeLink), body, err)
}

func (l *RichTextLink) UnmarshalJSON(data []byte) error {
	type alias RichTextLink
	return untag(data, string(RichTextSubTypeLink), (*alias)(l))
}

// RichTextEmoji is an emoji by short name.
type RichTextEmoji struct {
	Name    string `json:"name"`
	Unicode string `json:"unicode,omitempty"`
}

func (RichTextEmoji) RichTextSubElementType() RichTextSubElementType { return RichTextSubTypeEmoji }
func (RichTextEmoji) isRichTextSubElement()                          {}

func (e RichTextEmoji) Validate() error {
	return Missing(string(RichTextSubTypeEmoji), missingIf(e.Name == "", "name")...)
}

func (e RichTextEmoji) MarshalJSON() ([]byte, error) {
	type alias RichTextEmoji
	body, err := json.Marshal(alias(e))
	return tagged(string(RichTextSubTypeEmoji), body, err)
}

func (e *RichTextEmoji) UnmarshalJSON(data []byte) error {
	type alias RichTextEmoji
	return untag(data, string(RichTextSubTypeEmoji), (*alias)(e))
}

// RichTextChannel mentions a channel.
type RichTextChannel struct {
	ChannelID string                `json:"channel_id"`
	Style     *RichTextMentionStyle `json:"style,omitempty"`
}

func (RichTextChannel) RichTextSubElementType() RichTextSubElementType {
	return RichTextSubTypeChannel
}
func (RichTextChannel) isRichTextSubElement() {}

func (c RichTextChannel) Validate() error {
	return Missing(string(RichTextSubTypeChannel), missingIf(c.ChannelID == "", "channel_id")...)
}

func (c RichTextChannel) MarshalJSON() ([]byte, error) {
	type alias RichTextChannel
	body, err := json.Marshal(alias(c))
	return tagged(string(RichTextSubTypeChannel), body, err)
}

func (c *RichTextChannel) UnmarshalJSON(data []byte) error {
	type alias RichTextChannel
	return untag(data, string(RichTextSubTypeChannel), (*alias)(c))
}

// RichTextUser mentions a user.
type RichTextUser struct {
	UserID string                `json:"user_id"`
	Style  *RichTextMentionStyle `json:"style,omitempty"`
}

func (RichTextUser) RichTextSubElementType() RichTextSubElementType { return RichTextSubTypeUser }
func (RichTextUser) isRichTextSubElement()                          {}

func (u RichTextUser) Validate() error {
	return Missing(string(RichTextSubTypeUser), missingIf(u.UserID == "", "user_id")...)
}

func (u RichTextUser) MarshalJSON() ([]byte, error) {
	type alias RichTextUser
	body, err := json.Marshal(alias(u))
	return tagged(string(RichTextSubTypeUser), body, err)
}

func (u *RichTextUser) UnmarshalJSON(data []byte) error {
	type alias RichTextUser
	return untag(data, string(RichTextSubTypeUser), (*alias)(u))
}

// RichTextUserGroup mentions a user group.
type RichTextUserGroup struct {
	UserGroupID string                `json:"usergroup_id"`
	Style       *RichTextMentionStyle `json:"style,omitempty"`
}

func (RichTextUserGroup) RichTextSubElementType() RichTextSubElementType {
	return RichTextSubTypeUserGroup
}
func (RichTextUserGroup) isRichTextSubElement() {}

func (g RichTextUserGroup) Validate() error {
	return Missing(string(RichTextSubTypeUserGroup), missingIf(g.UserGroupID == "", "usergroup_id")...)
}

func (g RichTextUserGroup) MarshalJSON() ([]byte, error) {
	type alias RichTextUserGroup
	body, err := json.Marshal(alias(g))
	return tagged(string(RichTextSubTypeUserGroup), body, err)
}

func (g *RichTextUserGroup) UnmarshalJSON(data []byte) error {
	type alias RichTextUserGroup
	return untag(data, string(RichTextSubTypeUserGroup), (*alias)(g))
}

func missingIf(cond bool, field string) []string {
	if cond {
		return []string{field}
	}
	return nil
}
