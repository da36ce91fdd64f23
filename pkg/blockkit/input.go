package blockkit

import (
	"encoding/json"
	"regexp"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Checkboxes is a group of checkboxes.
type Checkboxes struct {
	Actionable
	Options        []Option            `json:"options"`
	InitialOptions []Option            `json:"initial_options,omitzero"`
	Confirm        *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad    *bool               `json:"focus_on_load,omitempty"`
}

func (Checkboxes) ElementType() ElementType { return ElementTypeCheckboxes }
func (Checkboxes) isElement()               {}

func (c Checkboxes) Validate() error {
	if err := requiredOptions(string(ElementTypeCheckboxes), c.Options); err != nil {
		return err
	}
	if err := validateOptions("initial_options", c.InitialOptions); err != nil {
		return err
	}
	return validateConfirm(c.Confirm)
}

func (c Checkboxes) MarshalJSON() ([]byte, error) {
	type alias Checkboxes
	c.Options = nonNil(c.Options)
	body, err := json.Marshal(alias(c))
	return tagged(string(ElementTypeCheckboxes), body, err)
}

func (c *Checkboxes) UnmarshalJSON(data []byte) error {
	type alias Checkboxes
	return untag(data, string(ElementTypeCheckboxes), (*alias)(c))
}

// RadioButtons is a group of mutually exclusive options.
type RadioButtons struct {
	Actionable
	Options       []Option            `json:"options"`
	InitialOption *Option             `json:"initial_option,omitempty"`
	Confirm       *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad   *bool               `json:"focus_on_load,omitempty"`
}

func (RadioButtons) ElementType() ElementType { return ElementTypeRadioButtons }
func (RadioButtons) isElement()               {}

func (r RadioButtons) Validate() error {
	if err := requiredOptions(string(ElementTypeRadioButtons), r.Options); err != nil {
		return err
	}
	if err := validateInitialOption(r.InitialOption); err != nil {
		return err
	}
	return validateConfirm(r.Confirm)
}

func (r RadioButtons) MarshalJSON() ([]byte, error) {
	type alias RadioButtons
	r.Options = nonNil(r.Options)
	body, err := json.Marshal(alias(r))
	return tagged(string(ElementTypeRadioButtons), body, err)
}

func (r *RadioButtons) UnmarshalJSON(data []byte) error {
	type alias RadioButtons
	return untag(data, string(ElementTypeRadioButtons), (*alias)(r))
}

// DatePicker selects a calendar date.
type DatePicker struct {
	Actionable
	InitialDate string              `json:"initial_date,omitempty"` // YYYY-MM-DD
	Confirm     *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad *bool               `json:"focus_on_load,omitempty"`
	Placeholder *PlainText          `json:"placeholder,omitempty"`
}

func (DatePicker) ElementType() ElementType { return ElementTypeDatePicker }
func (DatePicker) isElement()               {}

func (d DatePicker) Validate() error {
	if d.InitialDate != "" && !datePattern.MatchString(d.InitialDate) {
		return Conflict(string(ElementTypeDatePicker), "expected YYYY-MM-DD", "initial_date")
	}
	return validatePrompt(d.Confirm, d.Placeholder)
}

func (d DatePicker) MarshalJSON() ([]byte, error) {
	type alias DatePicker
	body, err := json.Marshal(alias(d))
	return tagged(string(ElementTypeDatePicker), body, err)
}

func (d *DatePicker) UnmarshalJSON(data []byte) error {
	type alias DatePicker
	return untag(data, string(ElementTypeDatePicker), (*alias)(d))
}

// DatetimePicker selects a date and time.
type DatetimePicker struct {
	Actionable
	InitialDateTime *int64              `json:"initial_date_time,omitempty"` // Unix seconds
	Confirm         *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad     *bool               `json:"focus_on_load,omitempty"`
}

func (DatetimePicker) ElementType() ElementType { return ElementTypeDatetimePicker }
func (DatetimePicker) isElement()               {}

func (d DatetimePicker) Validate() error {
	return validateConfirm(d.Confirm)
}

func (d DatetimePicker) MarshalJSON() ([]byte, error) {
	type alias DatetimePicker
	body, err := json.Marshal(alias(d))
	return tagged(string(ElementTypeDatetimePicker), body, err)
}

func (d *DatetimePicker) UnmarshalJSON(data []byte) error {
	type alias DatetimePicker
	return untag(data, string(ElementTypeDatetimePicker), (*alias)(d))
}

// Timepicker selects a time of day.
type Timepicker struct {
	Actionable
	InitialTime string              `json:"initial_time,omitempty"` // HH:mm, 24-hour
	Timezone    string              `json:"timezone,omitempty"`     // IANA name
	Confirm     *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad *bool               `json:"focus_on_load,omitempty"`
	Placeholder *PlainText          `json:"placeholder,omitempty"`
}

func (Timepicker) ElementType() ElementType { return ElementTypeTimepicker }
func (Timepicker) isElement()               {}

func (t Timepicker) Validate() error {
	if t.InitialTime != "" && !timePattern.MatchString(t.InitialTime) {
		return Conflict(string(ElementTypeTimepicker), "expected HH:mm", "initial_time")
	}
	return validatePrompt(t.Confirm, t.Placeholder)
}

func (t Timepicker) MarshalJSON() ([]byte, error) {
	type alias Timepicker
	body, err := json.Marshal(alias(t))
	return tagged(string(ElementTypeTimepicker), body, err)
}

func (t *Timepicker) UnmarshalJSON(data []byte) error {
	type alias Timepicker
	return untag(data, string(ElementTypeTimepicker), (*alias)(t))
}

// EmailInput is a single-line email address input.
type EmailInput struct {
	Actionable
	InitialValue         string                `json:"initial_value,omitempty"`
	DispatchActionConfig *DispatchActionConfig `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                 `json:"focus_on_load,omitempty"`
	Placeholder          *PlainText            `json:"placeholder,omitempty"`
}

func (EmailInput) ElementType() ElementType { return ElementTypeEmailInput }
func (EmailInput) isElement()               {}

func (e EmailInput) Validate() error {
	if err := validateDispatchConfig(e.DispatchActionConfig); err != nil {
		return err
	}
	return validatePlaceholder(e.Placeholder)
}

func (e EmailInput) MarshalJSON() ([]byte, error) {
	type alias EmailInput
	body, err := json.Marshal(alias(e))
	return tagged(string(ElementTypeEmailInput), body, err)
}

func (e *EmailInput) UnmarshalJSON(data []byte) error {
	type alias EmailInput
	return untag(data, string(ElementTypeEmailInput), (*alias)(e))
}

// URLInput is a single-line URL input.
type URLInput struct {
	Actionable
	InitialValue         string                `json:"initial_value,omitempty"`
	DispatchActionConfig *DispatchActionConfig `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                 `json:"focus_on_load,omitempty"`
	Placeholder          *PlainText            `json:"placeholder,omitempty"`
}

func (URLInput) ElementType() ElementType { return ElementTypeURLInput }
func (URLInput) isElement()               {}

func (u URLInput) Validate() error {
	if err := validateDispatchConfig(u.DispatchActionConfig); err != nil {
		return err
	}
	return validatePlaceholder(u.Placeholder)
}

func (u URLInput) MarshalJSON() ([]byte, error) {
	type alias URLInput
	body, err := json.Marshal(alias(u))
	return tagged(string(ElementTypeURLInput), body, err)
}

func (u *URLInput) UnmarshalJSON(data []byte) error {
	type alias URLInput
	return untag(data, string(ElementTypeURLInput), (*alias)(u))
}

// NumberInput accepts integers or, when IsDecimalAllowed, decimals.
// Numeric bounds are carried as strings, as on the wire.
type NumberInput struct {
	Actionable
	IsDecimalAllowed     bool                  `json:"is_decimal_allowed"`
	InitialValue         string                `json:"initial_value,omitempty"`
	MinValue             string                `json:"min_value,omitempty"`
	MaxValue             string                `json:"max_value,omitempty"`
	DispatchActionConfig *DispatchActionConfig `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                 `json:"focus_on_load,omitempty"`
	Placeholder          *PlainText            `json:"placeholder,omitempty"`
}

func (NumberInput) ElementType() ElementType { return ElementTypeNumberInput }
func (NumberInput) isElement()               {}

func (n NumberInput) Validate() error {
	if err := validateDispatchConfig(n.DispatchActionConfig); err != nil {
		return err
	}
	return validatePlaceholder(n.Placeholder)
}

func (n NumberInput) MarshalJSON() ([]byte, error) {
	type alias NumberInput
	body, err := json.Marshal(alias(n))
	return tagged(string(ElementTypeNumberInput), body, err)
}

func (n *NumberInput) UnmarshalJSON(data []byte) error {
	type alias NumberInput
	return untag(data, string(ElementTypeNumberInput), (*alias)(n))
}

// PlainTextInput is a free-text input, single or multi-line.
type PlainTextInput struct {
	Actionable
	InitialValue         string                `json:"initial_value,omitempty"`
	Multiline            *bool                 `json:"multiline,omitempty"`
	MinLength            *int                  `json:"min_length,omitempty"`
	MaxLength            *int                  `json:"max_length,omitempty"`
	DispatchActionConfig *DispatchActionConfig `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                 `json:"focus_on_load,omitempty"`
	Placeholder          *PlainText            `json:"placeholder,omitempty"`
}

func (PlainTextInput) ElementType() ElementType { return ElementTypePlainTextInput }
func (PlainTextInput) isElement()               {}

func (p PlainTextInput) Validate() error {
	if p.MinLength != nil && p.MaxLength != nil && *p.MinLength > *p.MaxLength {
		return Conflict(string(ElementTypePlainTextInput), "min_length exceeds max_length", "min_length", "max_length")
	}
	if err := validateDispatchConfig(p.DispatchActionConfig); err != nil {
		return err
	}
	return validatePlaceholder(p.Placeholder)
}

func (p PlainTextInput) MarshalJSON() ([]byte, error) {
	type alias PlainTextInput
	body, err := json.Marshal(alias(p))
	return tagged(string(ElementTypePlainTextInput), body, err)
}

func (p *PlainTextInput) UnmarshalJSON(data []byte) error {
	type alias PlainTextInput
	return untag(data, string(ElementTypePlainTextInput), (*alias)(p))
}

// FileInput accepts file uploads inside an input block.
type FileInput struct {
	Actionable
	FileTypes []FileExtension `json:"filetypes,omitzero"`
	MaxFiles  *int            `json:"max_files,omitempty"` // 1-10, platform default 10
}

func (FileInput) ElementType() ElementType { return ElementTypeFileInput }
func (FileInput) isElement()               {}

func (f FileInput) Validate() error {
	for i, ft := range f.FileTypes {
		if err := ft.Validate(); err != nil {
			return atIndex("filetypes", i, Conflict(string(ElementTypeFileInput), err.Error(), "filetypes"))
		}
	}
	if f.MaxFiles != nil && *f.MaxFiles < 1 {
		return Conflict(string(ElementTypeFileInput), "must be >= 1", "max_files")
	}
	return nil
}

func (f FileInput) MarshalJSON() ([]byte, error) {
	type alias FileInput
	body, err := json.Marshal(alias(f))
	return tagged(string(ElementTypeFileInput), body, err)
}

func (f *FileInput) UnmarshalJSON(data []byte) error {
	type alias FileInput
	return untag(data, string(ElementTypeFileInput), (*alias)(f))
}

// RichTextInput is a formatted text input whose value is a rich text block.
type RichTextInput struct {
	Actionable
	InitialValue         *RichTextBlock        `json:"initial_value,omitempty"`
	DispatchActionConfig *DispatchActionConfig `json:"dispatch_action_config,omitempty"`
	FocusOnLoad          *bool                 `json:"focus_on_load,omitempty"`
	Placeholder          *PlainText            `json:"placeholder,omitempty"`
}

func (RichTextInput) ElementType() ElementType { return ElementTypeRichTextInput }
func (RichTextInput) isElement()               {}

func (r RichTextInput) Validate() error {
	if r.InitialValue != nil {
		if err := at("initial_value", r.InitialValue.Validate()); err != nil {
			return err
		}
	}
	if err := validateDispatchConfig(r.DispatchActionConfig); err != nil {
		return err
	}
	return validatePlaceholder(r.Placeholder)
}

func (r RichTextInput) MarshalJSON() ([]byte, error) {
	type alias RichTextInput
	body, err := json.Marshal(alias(r))
	return tagged(string(ElementTypeRichTextInput), body, err)
}

func (r *RichTextInput) UnmarshalJSON(data []byte) error {
	type alias RichTextInput
	return untag(data, string(ElementTypeRichTextInput), (*alias)(r))
}
