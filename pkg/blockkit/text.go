package blockkit

import (
	"encoding/json"
	"fmt"
)

// TextType is the wire discriminator of a text composition object.
type TextType string

const (
	TextTypePlain    TextType = "plain_text"
	TextTypeMarkdown TextType = "mrkdwn"
)

// Validate checks if the TextType is a valid enum value.
func (tt TextType) Validate() error {
	switch tt {
	case TextTypePlain, TextTypeMarkdown:
		return nil
	default:
		return unknownType("text", string(tt))
	}
}

// Text is a text composition object: either PlainText or Markdown.
// The set of implementations is closed.
type Text interface {
	TextType() TextType
	Content() string
	Validate() error
	isText()
}

// PlainText is unformatted text. It never carries a verbatim flag.
type PlainText struct {
	Text  string `json:"text"`            // Required, non-empty
	Emoji *bool  `json:"emoji,omitempty"` // Whether :emoji: codes are rendered
}

// Markdown is mrkdwn-formatted text. It never carries an emoji flag.
type Markdown struct {
	Text     string `json:"text"`               // Required, non-empty
	Verbatim *bool  `json:"verbatim,omitempty"` // Disables auto-linking of URLs and mentions
}

// NewPlainText returns a PlainText with no optional flags set.
func NewPlainText(text string) PlainText {
	return PlainText{Text: text}
}

// NewMarkdown returns a Markdown with no optional flags set.
func NewMarkdown(text string) Markdown {
	return Markdown{Text: text}
}

func (PlainText) TextType() TextType { return TextTypePlain }
func (t PlainText) Content() string  { return t.Text }
func (PlainText) isText()            {}
func (PlainText) isContextElement()  {}
func (Markdown) TextType() TextType  { return TextTypeMarkdown }
func (t Markdown) Content() string   { return t.Text }
func (Markdown) isText()             {}
func (Markdown) isContextElement()   {}

// Validate checks that the text is present.
func (t PlainText) Validate() error {
	var missing requiredFields
	missing.check(t.Text != "", "text")
	return missing.err(string(TextTypePlain))
}

// Validate checks that the text is present.
func (t Markdown) Validate() error {
	var missing requiredFields
	missing.check(t.Text != "", "text")
	return missing.err(string(TextTypeMarkdown))
}

// MarshalJSON emits the object with its "type" discriminator.
func (t PlainText) MarshalJSON() ([]byte, error) {
	type alias PlainText
	return json.Marshal(struct {
		Type TextType `json:"type"`
		alias
	}{TextTypePlain, alias(t)})
}

// UnmarshalJSON rejects any object that is not plain_text or that carries verbatim.
func (t *PlainText) UnmarshalJSON(data []byte) error {
	type alias PlainText
	var w struct {
		Type     TextType        `json:"type"`
		Verbatim json.RawMessage `json:"verbatim"`
		alias
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type != TextTypePlain {
		return Conflict(string(TextTypePlain), fmt.Sprintf("got type %q", w.Type), "type")
	}
	if !isAbsent(w.Verbatim) {
		return Conflict(string(TextTypePlain), "verbatim is only valid on mrkdwn", "verbatim")
	}
	*t = PlainText(w.alias)
	return nil
}

// MarshalJSON emits the object with its "type" discriminator.
func (t Markdown) MarshalJSON() ([]byte, error) {
	type alias Markdown
	return json.Marshal(struct {
		Type TextType `json:"type"`
		alias
	}{TextTypeMarkdown, alias(t)})
}

// UnmarshalJSON rejects any object that is not mrkdwn or that carries emoji.
func (t *Markdown) UnmarshalJSON(data []byte) error {
	type alias Markdown
	var w struct {
		Type  TextType        `json:"type"`
		Emoji json.RawMessage `json:"emoji"`
		alias
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type != TextTypeMarkdown {
		return Conflict(string(TextTypeMarkdown), fmt.Sprintf("got type %q", w.Type), "type")
	}
	if !isAbsent(w.Emoji) {
		return Conflict(string(TextTypeMarkdown), "emoji is only valid on plain_text", "emoji")
	}
	*t = Markdown(w.alias)
	return nil
}

// DecodeText decodes a text composition object of either variant.
func DecodeText(data []byte) (Text, error) {
	typ, err := peekType(data)
	if err != nil {
		return nil, err
	}
	switch TextType(typ) {
	case TextTypePlain:
		var t PlainText
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	case TextTypeMarkdown:
		var t Markdown
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, unknownType("text", typ)
	}
}

// decodeOptionalText decodes raw into a Text, treating an absent value as nil.
func decodeOptionalText(raw json.RawMessage) (Text, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	return DecodeText(raw)
}

// Bool returns a pointer to b, for optional boolean fields.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i, for optional integer fields.
func Int(i int) *int {
	return &i
}
