package builder

import (
	"fmt"
	"time"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// DatePickerBuilder builds a date picker.
type DatePickerBuilder struct {
	actionID    string
	initialDate string
	placeholder *PlainTextBuilder
	confirm     func(*ConfirmationDialogBuilder)
	focusOnLoad *bool
}

// NewDatePicker starts an empty date picker builder.
func NewDatePicker() *DatePickerBuilder {
	return &DatePickerBuilder{}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *DatePickerBuilder) ActionID(id string) *DatePickerBuilder {
	b.actionID = id
	return b
}

// InitialDate preselects the calendar date of t, in t's location.
func (b *DatePickerBuilder) InitialDate(t time.Time) *DatePickerBuilder {
	b.initialDate = t.Format(time.DateOnly)
	return b
}

// Placeholder sets the hint shown while the element is empty.
func (b *DatePickerBuilder) Placeholder(text string, opts ...PlainTextOption) *DatePickerBuilder {
	b.placeholder = plainText(text, opts)
	return b
}

// Confirm attaches a confirmation dialog configured by configure.
func (b *DatePickerBuilder) Confirm(configure func(*ConfirmationDialogBuilder)) *DatePickerBuilder {
	b.confirm = configure
	return b
}

// FocusOnLoad focuses the element when the view opens.
func (b *DatePickerBuilder) FocusOnLoad(focus bool) *DatePickerBuilder {
	b.focusOnLoad = &focus
	return b
}

// Build validates and returns the date picker.
func (b *DatePickerBuilder) Build() (blockkit.DatePicker, error) {
	confirm, err := buildConfirm(b.confirm)
	if err != nil {
		return blockkit.DatePicker{}, fmt.Errorf("confirm: %w", err)
	}
	d := blockkit.DatePicker{
		Actionable:  blockkit.Actionable{ActionID: b.actionID},
		InitialDate: b.initialDate,
		Confirm:     confirm,
		FocusOnLoad: b.focusOnLoad,
		Placeholder: optionalPlainText(b.placeholder),
	}
	if err := d.Validate(); err != nil {
		return blockkit.DatePicker{}, err
	}
	return d, nil
}

// BuildElement implements ElementBuilder.
func (b *DatePickerBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }

// TimepickerBuilder builds a time picker.
type TimepickerBuilder struct {
	actionID    string
	initialTime string
	timezone    string
	placeholder *PlainTextBuilder
	confirm     func(*ConfirmationDialogBuilder)
	focusOnLoad *bool
}

// NewTimepicker starts an empty time picker builder.
func NewTimepicker() *TimepickerBuilder {
	return &TimepickerBuilder{}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *TimepickerBuilder) ActionID(id string) *TimepickerBuilder {
	b.actionID = id
	return b
}

// InitialTime preselects hour:minute on a 24-hour clock.
func (b *TimepickerBuilder) InitialTime(hour, minute int) *TimepickerBuilder {
	b.initialTime = fmt.Sprintf("%02d:%02d", hour, minute)
	return b
}

// Timezone sets the zone the picked time is interpreted in.
func (b *TimepickerBuilder) Timezone(loc *time.Location) *TimepickerBuilder {
	b.timezone = loc.String()
	return b
}

// Placeholder sets the hint shown while the element is empty.
func (b *TimepickerBuilder) Placeholder(text string, opts ...PlainTextOption) *TimepickerBuilder {
	b.placeholder = plainText(text, opts)
	return b
}

// Confirm attaches a confirmation dialog configured by configure.
func (b *TimepickerBuilder) Confirm(configure func(*ConfirmationDialogBuilder)) *TimepickerBuilder {
	b.confirm = configure
	return b
}

// FocusOnLoad focuses the element when the view opens.
func (b *TimepickerBuilder) FocusOnLoad(focus bool) *TimepickerBuilder {
	b.focusOnLoad = &focus
	return b
}

// Build validates and returns the time picker.
func (b *TimepickerBuilder) Build() (blockkit.Timepicker, error) {
	confirm, err := buildConfirm(b.confirm)
	if err != nil {
		return blockkit.Timepicker{}, fmt.Errorf("confirm: %w", err)
	}
	t := blockkit.Timepicker{
		Actionable:  blockkit.Actionable{ActionID: b.actionID},
		InitialTime: b.initialTime,
		Timezone:    b.timezone,
		Confirm:     confirm,
		FocusOnLoad: b.focusOnLoad,
		Placeholder: optionalPlainText(b.placeholder),
	}
	if err := t.Validate(); err != nil {
		return blockkit.Timepicker{}, err
	}
	return t, nil
}

// BuildElement implements ElementBuilder.
func (b *TimepickerBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }

// PlainTextInputBuilder builds a free-text input.
type PlainTextInputBuilder struct {
	actionID     string
	initialValue string
	multiline    *bool
	minLength    *int
	maxLength    *int
	dispatchOn   []blockkit.InteractionType
	placeholder  *PlainTextBuilder
	focusOnLoad  *bool
}

// NewPlainTextInput starts an empty plain text input builder.
func NewPlainTextInput() *PlainTextInputBuilder {
	return &PlainTextInputBuilder{}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *PlainTextInputBuilder) ActionID(id string) *PlainTextInputBuilder {
	b.actionID = id
	return b
}

// InitialValue prefills the input.
func (b *PlainTextInputBuilder) InitialValue(value string) *PlainTextInputBuilder {
	b.initialValue = value
	return b
}

// Multiline switches to a multi-line text area.
func (b *PlainTextInputBuilder) Multiline(multiline bool) *PlainTextInputBuilder {
	b.multiline = &multiline
	return b
}

// Length bounds the accepted input. Pass a negative value to leave a bound unset.
func (b *PlainTextInputBuilder) Length(minLength, maxLength int) *PlainTextInputBuilder {
	if minLength >= 0 {
		b.minLength = &minLength
	}
	if maxLength >= 0 {
		b.maxLength = &maxLength
	}
	return b
}

// DispatchOn lists the events that send a block_actions payload.
func (b *PlainTextInputBuilder) DispatchOn(events ...blockkit.InteractionType) *PlainTextInputBuilder {
	b.dispatchOn = append(b.dispatchOn, events...)
	return b
}

// Placeholder sets the hint shown while the element is empty.
func (b *PlainTextInputBuilder) Placeholder(text string, opts ...PlainTextOption) *PlainTextInputBuilder {
	b.placeholder = plainText(text, opts)
	return b
}

// FocusOnLoad focuses the element when the view opens.
func (b *PlainTextInputBuilder) FocusOnLoad(focus bool) *PlainTextInputBuilder {
	b.focusOnLoad = &focus
	return b
}

// Build validates and returns the plain text input.
func (b *PlainTextInputBuilder) Build() (blockkit.PlainTextInput, error) {
	p := blockkit.PlainTextInput{
		Actionable:   blockkit.Actionable{ActionID: b.actionID},
		InitialValue: b.initialValue,
		Multiline:    b.multiline,
		MinLength:    b.minLength,
		MaxLength:    b.maxLength,
		FocusOnLoad:  b.focusOnLoad,
		Placeholder:  optionalPlainText(b.placeholder),
	}
	if len(b.dispatchOn) > 0 {
		p.DispatchActionConfig = &blockkit.DispatchActionConfig{TriggerActionsOn: b.dispatchOn}
	}
	if err := p.Validate(); err != nil {
		return blockkit.PlainTextInput{}, err
	}
	return p, nil
}

// BuildElement implements ElementBuilder.
func (b *PlainTextInputBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }
