package blockkit

import (
	"encoding/json"
)

// ElementType is the wire discriminator of an element.
type ElementType string

const (
	ElementTypeButton                   ElementType = "button"
	ElementTypeCheckboxes               ElementType = "checkboxes"
	ElementTypeDatePicker               ElementType = "datepicker"
	ElementTypeDatetimePicker           ElementType = "datetimepicker"
	ElementTypeEmailInput               ElementType = "email_text_input"
	ElementTypeFileInput                ElementType = "file_input"
	ElementTypeImage                    ElementType = "image"
	ElementTypeMultiStaticSelect        ElementType = "multi_static_select"
	ElementTypeMultiExternalSelect      ElementType = "multi_external_select"
	ElementTypeMultiUsersSelect         ElementType = "multi_users_select"
	ElementTypeMultiConversationsSelect ElementType = "multi_conversations_select"
	ElementTypeMultiChannelsSelect      ElementType = "multi_channels_select"
	ElementTypeNumberInput              ElementType = "number_input"
	ElementTypeOverflow                 ElementType = "overflow"
	ElementTypePlainTextInput           ElementType = "plain_text_input"
	ElementTypeRadioButtons             ElementType = "radio_buttons"
	ElementTypeRichTextInput            ElementType = "rich_text_input"
	ElementTypeStaticSelect             ElementType = "static_select"
	ElementTypeExternalSelect           ElementType = "external_select"
	ElementTypeUsersSelect              ElementType = "users_select"
	ElementTypeConversationsSelect      ElementType = "conversations_select"
	ElementTypeChannelsSelect           ElementType = "channels_select"
	ElementTypeTimepicker               ElementType = "timepicker"
	ElementTypeURLInput                 ElementType = "url_text_input"
	ElementTypeWorkflowButton           ElementType = "workflow_button"
)

// ElementTypes lists every element variant in declaration order.
var ElementTypes = []ElementType{
	ElementTypeButton, ElementTypeCheckboxes, ElementTypeDatePicker, ElementTypeDatetimePicker,
	ElementTypeEmailInput, ElementTypeFileInput, ElementTypeImage,
	ElementTypeMultiStaticSelect, ElementTypeMultiExternalSelect, ElementTypeMultiUsersSelect,
	ElementTypeMultiConversationsSelect, ElementTypeMultiChannelsSelect,
	ElementTypeNumberInput, ElementTypeOverflow, ElementTypePlainTextInput, ElementTypeRadioButtons,
	ElementTypeRichTextInput, ElementTypeStaticSelect, ElementTypeExternalSelect,
	ElementTypeUsersSelect, ElementTypeConversationsSelect, ElementTypeChannelsSelect,
	ElementTypeTimepicker, ElementTypeURLInput, ElementTypeWorkflowButton,
}

// Validate checks if the ElementType is a valid enum value.
func (et ElementType) Validate() error {
	if _, ok := elementDecoders[et]; !ok {
		return unknownType("element", string(et))
	}
	return nil
}

// Element is an interactive or display widget nested inside a block.
// The set of implementations is closed.
type Element interface {
	ElementType() ElementType
	Validate() error
	isElement()
}

// Actionable is the field group shared by every element that reports interactions.
// Embedding it makes an element an ActionableElement.
type Actionable struct {
	ActionID string `json:"action_id,omitempty"` // Correlates interaction payloads with this element
}

func (a Actionable) actionable() Actionable { return a }

// ActionableElement is implemented by every element except ImageElement.
type ActionableElement interface {
	Element
	actionable() Actionable
}

// ActionIDOf returns the action ID of e and whether e is actionable at all.
func ActionIDOf(e Element) (string, bool) {
	ae, ok := e.(ActionableElement)
	if !ok {
		return "", false
	}
	return ae.actionable().ActionID, true
}

// MultiSelectFields is the field group shared by the five multi-select elements.
type MultiSelectFields struct {
	Confirm          *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad      *bool               `json:"focus_on_load,omitempty"`
	MaxSelectedItems *int                `json:"max_selected_items,omitempty"` // >= 1 when set
	Placeholder      *PlainText          `json:"placeholder,omitempty"`
}

func (m MultiSelectFields) multiSelect() MultiSelectFields { return m }

func (m MultiSelectFields) validate() error {
	if err := validateConfirm(m.Confirm); err != nil {
		return err
	}
	if m.MaxSelectedItems != nil && *m.MaxSelectedItems < 1 {
		return Conflict("multi_select", "must be >= 1", "max_selected_items")
	}
	return validatePlaceholder(m.Placeholder)
}

// MultiSelect is implemented by the multi-select element family.
type MultiSelect interface {
	ActionableElement
	multiSelect() MultiSelectFields
}

// MultiSelectFieldsOf returns the shared multi-select fields of e, if e is a multi-select.
func MultiSelectFieldsOf(e Element) (MultiSelectFields, bool) {
	ms, ok := e.(MultiSelect)
	if !ok {
		return MultiSelectFields{}, false
	}
	return ms.multiSelect(), true
}

var elementDecoders = map[ElementType]func([]byte) (Element, error){
	ElementTypeButton:                   decodeVariant[Element, Button],
	ElementTypeCheckboxes:               decodeVariant[Element, Checkboxes],
	ElementTypeDatePicker:               decodeVariant[Element, DatePicker],
	ElementTypeDatetimePicker:           decodeVariant[Element, DatetimePicker],
	ElementTypeEmailInput:               decodeVariant[Element, EmailInput],
	ElementTypeFileInput:                decodeVariant[Element, FileInput],
	ElementTypeImage:                    decodeVariant[Element, ImageElement],
	ElementTypeMultiStaticSelect:        decodeVariant[Element, MultiStaticSelect],
	ElementTypeMultiExternalSelect:      decodeVariant[Element, MultiExternalSelect],
	ElementTypeMultiUsersSelect:         decodeVariant[Element, MultiUsersSelect],
	ElementTypeMultiConversationsSelect: decodeVariant[Element, MultiConversationsSelect],
	ElementTypeMultiChannelsSelect:      decodeVariant[Element, MultiChannelsSelect],
	ElementTypeNumberInput:              decodeVariant[Element, NumberInput],
	ElementTypeOverflow:                 decodeVariant[Element, Overflow],
	ElementTypePlainTextInput:           decodeVariant[Element, PlainTextInput],
	ElementTypeRadioButtons:             decodeVariant[Element, RadioButtons],
	ElementTypeRichTextInput:            decodeVariant[Element, RichTextInput],
	ElementTypeStaticSelect:             decodeVariant[Element, StaticSelect],
	ElementTypeExternalSelect:           decodeVariant[Element, ExternalSelect],
	ElementTypeUsersSelect:              decodeVariant[Element, UsersSelect],
	ElementTypeConversationsSelect:      decodeVariant[Element, ConversationsSelect],
	ElementTypeChannelsSelect:           decodeVariant[Element, ChannelsSelect],
	ElementTypeTimepicker:               decodeVariant[Element, Timepicker],
	ElementTypeURLInput:                 decodeVariant[Element, URLInput],
	ElementTypeWorkflowButton:           decodeVariant[Element, WorkflowButton],
}

// DecodeElement decodes and validates a single element of any variant.
func DecodeElement(data []byte) (Element, error) {
	e, err := decodeElementUnchecked(data)
	if err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeElementUnchecked(data []byte) (Element, error) {
	typ, err := peekType(data)
	if err != nil {
		return nil, err
	}
	decode, ok := elementDecoders[ElementType(typ)]
	if !ok {
		return nil, unknownType("element", typ)
	}
	return decode(data)
}

func decodeOptionalElement(raw json.RawMessage) (Element, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	return decodeElementUnchecked(raw)
}

func validateElements(path string, elements []Element) error {
	for i, e := range elements {
		if e == nil {
			return atIndex(path, i, Missing("element", "type"))
		}
		if err := e.Validate(); err != nil {
			return atIndex(path, i, err)
		}
	}
	return nil
}

func validateConfirm(c *ConfirmationDialog) error {
	if c == nil {
		return nil
	}
	return at("confirm", c.Validate())
}

func validatePlaceholder(p *PlainText) error {
	if p == nil {
		return nil
	}
	return at("placeholder", p.Validate())
}

func validateDispatchConfig(c *DispatchActionConfig) error {
	if c == nil {
		return nil
	}
	return at("dispatch_action_config", c.Validate())
}

// Button is a clickable button that reports an interaction or opens a URL.
type Button struct {
	Actionable
	Text               PlainText           `json:"text"`
	URL                string              `json:"url,omitempty"`
	Value              string              `json:"value,omitempty"`
	Style              Style               `json:"style,omitempty"`
	Confirm            *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad        *bool               `json:"focus_on_load,omitempty"`
	AccessibilityLabel string              `json:"accessibility_label,omitempty"`
}

func (Button) ElementType() ElementType { return ElementTypeButton }
func (Button) isElement()               {}

// Validate checks the button's text, style and confirmation dialog.
func (b Button) Validate() error {
	var missing requiredFields
	missing.check(b.Text.Text != "", "text")
	if err := missing.err(string(ElementTypeButton)); err != nil {
		return err
	}
	if err := b.Style.Validate(); err != nil {
		return err
	}
	return validateConfirm(b.Confirm)
}

func (b Button) MarshalJSON() ([]byte, error) {
	type alias Button
	body, err := json.Marshal(alias(b))
	return tagged(string(ElementTypeButton), body, err)
}

func (b *Button) UnmarshalJSON(data []byte) error {
	type alias Button
	return untag(data, string(ElementTypeButton), (*alias)(b))
}

// ImageElement is a non-interactive image inside a section or context block.
// Exactly one of ImageURL and SlackFile is set.
type ImageElement struct {
	AltText   string     `json:"alt_text"`
	ImageURL  string     `json:"image_url,omitempty"`
	SlackFile *SlackFile `json:"slack_file,omitempty"`
}

func (ImageElement) ElementType() ElementType { return ElementTypeImage }
func (ImageElement) isElement()               {}
func (ImageElement) isContextElement()        {}

// Validate checks the alt text and that exactly one image source is set.
func (e ImageElement) Validate() error {
	var missing requiredFields
	missing.check(e.AltText != "", "alt_text")
	if err := missing.err(string(ElementTypeImage)); err != nil {
		return err
	}
	return validateImageSource(string(ElementTypeImage), e.ImageURL, e.SlackFile)
}

func (e ImageElement) MarshalJSON() ([]byte, error) {
	type alias ImageElement
	body, err := json.Marshal(alias(e))
	return tagged(string(ElementTypeImage), body, err)
}

func (e *ImageElement) UnmarshalJSON(data []byte) error {
	type alias ImageElement
	return untag(data, string(ElementTypeImage), (*alias)(e))
}

func validateImageSource(node, url string, file *SlackFile) error {
	switch {
	case url == "" && file == nil:
		return Missing(node, "image_url|slack_file")
	case url != "" && file != nil:
		return Conflict(node, "image_url and slack_file are mutually exclusive", "image_url", "slack_file")
	case file != nil:
		return at("slack_file", file.Validate())
	}
	return nil
}

// Overflow is a compact menu of up to five options.
type Overflow struct {
	Actionable
	Options []Option            `json:"options"`
	Confirm *ConfirmationDialog `json:"confirm,omitempty"`
}

func (Overflow) ElementType() ElementType { return ElementTypeOverflow }
func (Overflow) isElement()               {}

// Validate checks every option and the confirmation dialog.
func (o Overflow) Validate() error {
	if err := requiredOptions(string(ElementTypeOverflow), o.Options); err != nil {
		return err
	}
	return validateConfirm(o.Confirm)
}

func (o Overflow) MarshalJSON() ([]byte, error) {
	type alias Overflow
	o.Options = nonNil(o.Options)
	body, err := json.Marshal(alias(o))
	return tagged(string(ElementTypeOverflow), body, err)
}

func (o *Overflow) UnmarshalJSON(data []byte) error {
	type alias Overflow
	return untag(data, string(ElementTypeOverflow), (*alias)(o))
}

// WorkflowButton starts a workflow from a link trigger.
type WorkflowButton struct {
	Actionable
	Text               PlainText `json:"text"`
	Workflow           Workflow  `json:"workflow"`
	Style              Style     `json:"style,omitempty"`
	AccessibilityLabel string    `json:"accessibility_label,omitempty"`
}

func (WorkflowButton) ElementType() ElementType { return ElementTypeWorkflowButton }
func (WorkflowButton) isElement()               {}

// Validate checks the text, workflow and style.
func (b WorkflowButton) Validate() error {
	var missing requiredFields
	missing.check(b.Text.Text != "", "text")
	if err := missing.err(string(ElementTypeWorkflowButton)); err != nil {
		return err
	}
	if err := at("workflow", b.Workflow.Validate()); err != nil {
		return err
	}
	return b.Style.Validate()
}

func (b WorkflowButton) MarshalJSON() ([]byte, error) {
	type alias WorkflowButton
	body, err := json.Marshal(alias(b))
	return tagged(string(ElementTypeWorkflowButton), body, err)
}

func (b *WorkflowButton) UnmarshalJSON(data []byte) error {
	type alias WorkflowButton
	return untag(data, string(ElementTypeWorkflowButton), (*alias)(b))
}
