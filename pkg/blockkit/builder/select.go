package builder

import (
	"fmt"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// StaticSelectBuilder builds a static select from either flat options or option groups.
type StaticSelectBuilder struct {
	actionID      string
	options       optionList
	groups        []*OptionGroupBuilder
	initialOption string
	placeholder   *PlainTextBuilder
	confirm       func(*ConfirmationDialogBuilder)
	focusOnLoad   *bool
	err           error
}

// NewStaticSelect starts an empty static select builder.
func NewStaticSelect() *StaticSelectBuilder {
	return &StaticSelectBuilder{}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *StaticSelectBuilder) ActionID(id string) *StaticSelectBuilder {
	b.actionID = id
	return b
}

// Option appends a flat option. Mixing flat options and groups records a conflict.
func (b *StaticSelectBuilder) Option(text, value string, configure ...func(*OptionBuilder)) *StaticSelectBuilder {
	if len(b.groups) > 0 {
		b.conflict()
	}
	b.options.add(text, value, configure)
	return b
}

// Group appends a labelled option group.
func (b *StaticSelectBuilder) Group(label string, configure func(*OptionGroupBuilder)) *StaticSelectBuilder {
	if len(b.options) > 0 {
		b.conflict()
	}
	g := &OptionGroupBuilder{label: NewPlainText(label)}
	configure(g)
	b.groups = append(b.groups, g)
	return b
}

// InitialOption preselects the option carrying value.
func (b *StaticSelectBuilder) InitialOption(value string) *StaticSelectBuilder {
	b.initialOption = value
	return b
}

// Placeholder sets the text shown before a choice is made.
func (b *StaticSelectBuilder) Placeholder(text string, opts ...PlainTextOption) *StaticSelectBuilder {
	b.placeholder = plainText(text, opts)
	return b
}

// Confirm attaches a confirmation dialog configured by configure.
func (b *StaticSelectBuilder) Confirm(configure func(*ConfirmationDialogBuilder)) *StaticSelectBuilder {
	b.confirm = configure
	return b
}

// FocusOnLoad focuses the element when the view opens.
func (b *StaticSelectBuilder) FocusOnLoad(focus bool) *StaticSelectBuilder {
	b.focusOnLoad = &focus
	return b
}

func (b *StaticSelectBuilder) conflict() {
	if b.err == nil {
		b.err = blockkit.Conflict(string(blockkit.ElementTypeStaticSelect),
			"options and option_groups are mutually exclusive", "options", "option_groups")
	}
}

// Build validates and returns the static select.
func (b *StaticSelectBuilder) Build() (blockkit.StaticSelect, error) {
	if b.err != nil {
		return blockkit.StaticSelect{}, b.err
	}
	options, err := b.options.build("options")
	if err != nil {
		return blockkit.StaticSelect{}, err
	}
	var groups []blockkit.OptionGroup
	all := options
	for i, gb := range b.groups {
		g, err := gb.Build()
		if err != nil {
			return blockkit.StaticSelect{}, fmt.Errorf("option_groups[%d]: %w", i, err)
		}
		groups = append(groups, g)
		all = append(all, g.Options...)
	}
	confirm, err := buildConfirm(b.confirm)
	if err != nil {
		return blockkit.StaticSelect{}, fmt.Errorf("confirm: %w", err)
	}

	s := blockkit.StaticSelect{
		Actionable:   blockkit.Actionable{ActionID: b.actionID},
		Options:      options,
		OptionGroups: groups,
		Confirm:      confirm,
		FocusOnLoad:  b.focusOnLoad,
		Placeholder:  optionalPlainText(b.placeholder),
	}
	if b.initialOption != "" {
		initial, err := pick(string(blockkit.ElementTypeStaticSelect), all, []string{b.initialOption})
		if err != nil {
			return blockkit.StaticSelect{}, err
		}
		s.InitialOption = &initial[0]
	}
	if err := s.Validate(); err != nil {
		return blockkit.StaticSelect{}, err
	}
	return s, nil
}

// BuildElement implements ElementBuilder.
func (b *StaticSelectBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }

// CheckboxesBuilder builds a checkbox group.
type CheckboxesBuilder struct {
	actionID       string
	options        optionList
	initialOptions []string
	confirm        func(*ConfirmationDialogBuilder)
	focusOnLoad    *bool
}

// NewCheckboxes starts an empty checkbox group builder.
func NewCheckboxes() *CheckboxesBuilder {
	return &CheckboxesBuilder{}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *CheckboxesBuilder) ActionID(id string) *CheckboxesBuilder {
	b.actionID = id
	return b
}

// Option appends a checkbox.
func (b *CheckboxesBuilder) Option(text, value string, configure ...func(*OptionBuilder)) *CheckboxesBuilder {
	b.options.add(text, value, configure)
	return b
}

// InitialOptions pre-checks the options carrying values.
func (b *CheckboxesBuilder) InitialOptions(values ...string) *CheckboxesBuilder {
	b.initialOptions = append(b.initialOptions, values...)
	return b
}

// Confirm attaches a confirmation dialog configured by configure.
func (b *CheckboxesBuilder) Confirm(configure func(*ConfirmationDialogBuilder)) *CheckboxesBuilder {
	b.confirm = configure
	return b
}

// FocusOnLoad focuses the element when the view opens.
func (b *CheckboxesBuilder) FocusOnLoad(focus bool) *CheckboxesBuilder {
	b.focusOnLoad = &focus
	return b
}

// Build validates and returns the checkbox group.
func (b *CheckboxesBuilder) Build() (blockkit.Checkboxes, error) {
	options, err := b.options.build("options")
	if err != nil {
		return blockkit.Checkboxes{}, err
	}
	initial, err := pick(string(blockkit.ElementTypeCheckboxes), options, b.initialOptions)
	if err != nil {
		return blockkit.Checkboxes{}, err
	}
	confirm, err := buildConfirm(b.confirm)
	if err != nil {
		return blockkit.Checkboxes{}, fmt.Errorf("confirm: %w", err)
	}
	c := blockkit.Checkboxes{
		Actionable:     blockkit.Actionable{ActionID: b.actionID},
		Options:        options,
		InitialOptions: initial,
		Confirm:        confirm,
		FocusOnLoad:    b.focusOnLoad,
	}
	if err := c.Validate(); err != nil {
		return blockkit.Checkboxes{}, err
	}
	return c, nil
}

// BuildElement implements ElementBuilder.
func (b *CheckboxesBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }

// RadioButtonsBuilder builds a radio button group.
type RadioButtonsBuilder struct {
	actionID      string
	options       optionList
	initialOption string
	confirm       func(*ConfirmationDialogBuilder)
	focusOnLoad   *bool
}

// NewRadioButtons starts an empty radio button group builder.
func NewRadioButtons() *RadioButtonsBuilder {
	return &RadioButtonsBuilder{}
}

// ActionID sets the identifier reported in interaction payloads.
func (b *RadioButtonsBuilder) ActionID(id string) *RadioButtonsBuilder {
	b.actionID = id
	return b
}

// Option appends a radio button.
func (b *RadioButtonsBuilder) Option(text, value string, configure ...func(*OptionBuilder)) *RadioButtonsBuilder {
	b.options.add(text, value, configure)
	return b
}

// InitialOption preselects the option with value.
func (b *RadioButtonsBuilder) InitialOption(value string) *RadioButtonsBuilder {
	b.initialOption = value
	return b
}

// Confirm attaches a confirmation dialog configured by configure.
func (b *RadioButtonsBuilder) Confirm(configure func(*ConfirmationDialogBuilder)) *RadioButtonsBuilder {
	b.confirm = configure
	return b
}

// FocusOnLoad focuses the element when the view opens.
func (b *RadioButtonsBuilder) FocusOnLoad(focus bool) *RadioButtonsBuilder {
	b.focusOnLoad = &focus
	return b
}

// Build validates and returns the radio button group.
func (b *RadioButtonsBuilder) Build() (blockkit.RadioButtons, error) {
	options, err := b.options.build("options")
	if err != nil {
		return blockkit.RadioButtons{}, err
	}
	confirm, err := buildConfirm(b.confirm)
	if err != nil {
		return blockkit.RadioButtons{}, fmt.Errorf("confirm: %w", err)
	}
	r := blockkit.RadioButtons{
		Actionable:  blockkit.Actionable{ActionID: b.actionID},
		Options:     options,
		Confirm:     confirm,
		FocusOnLoad: b.focusOnLoad,
	}
	if b.initialOption != "" {
		initial, err := pick(string(blockkit.ElementTypeRadioButtons), options, []string{b.initialOption})
		if err != nil {
			return blockkit.RadioButtons{}, err
		}
		r.InitialOption = &initial[0]
	}
	if err := r.Validate(); err != nil {
		return blockkit.RadioButtons{}, err
	}
	return r, nil
}

// BuildElement implements ElementBuilder.
func (b *RadioButtonsBuilder) BuildElement() (blockkit.Element, error) { return b.Build() }
