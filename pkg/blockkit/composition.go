package blockkit

import (
	"encoding/json"
	"fmt"
)

// Style is the visual emphasis of buttons and confirmation dialogs.
// The zero value means "unset": the platform default applies.
type Style string

const (
	StylePrimary Style = "primary"
	StyleDanger  Style = "danger"
)

// Validate checks if the Style is a valid enum value. The empty style is valid.
func (s Style) Validate() error {
	switch s {
	case "", StylePrimary, StyleDanger:
		return nil
	default:
		return fmt.Errorf("unknown style: %q", s)
	}
}

// ConfirmationDialog asks the user to confirm an interaction before it is dispatched.
type ConfirmationDialog struct {
	Title   PlainText `json:"title"`
	Text    PlainText `json:"text"`
	Confirm PlainText `json:"confirm"`
	Deny    PlainText `json:"deny"`
	Style   Style     `json:"style,omitempty"`
}

// Validate checks that all four texts are present and the style is known.
func (d *ConfirmationDialog) Validate() error {
	var missing requiredFields
	missing.check(d.Title.Text != "", "title")
	missing.check(d.Text.Text != "", "text")
	missing.check(d.Confirm.Text != "", "confirm")
	missing.check(d.Deny.Text != "", "deny")
	if err := missing.err("confirm"); err != nil {
		return err
	}
	return d.Style.Validate()
}

// Option is a single selectable item in selects, overflows, checkboxes and radio buttons.
type Option struct {
	Text        Text       `json:"text"`                  // PlainText or Markdown (mrkdwn only for checkboxes/radio buttons)
	Value       string     `json:"value"`                 // Returned in the interaction payload
	Description *PlainText `json:"description,omitempty"` // Secondary line below the text
	URL         string     `json:"url,omitempty"`         // Overflow menus only
}

// Validate checks the option's required fields.
func (o *Option) Validate() error {
	var missing requiredFields
	missing.check(o.Text != nil, "text")
	missing.check(o.Value != "", "value")
	if err := missing.err("option"); err != nil {
		return err
	}
	return at("text", o.Text.Validate())
}

// UnmarshalJSON decodes the polymorphic text field.
func (o *Option) UnmarshalJSON(data []byte) error {
	type alias Option
	var w struct {
		Text json.RawMessage `json:"text"`
		alias
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	text, err := decodeOptionalText(w.Text)
	if err != nil {
		return at("text", err)
	}
	*o = Option(w.alias)
	o.Text = text
	return nil
}

// OptionGroup groups options under a label inside a select menu.
type OptionGroup struct {
	Label   PlainText `json:"label"`
	Options []Option  `json:"options"`
}

// Validate checks the label and every option.
func (g *OptionGroup) Validate() error {
	var missing requiredFields
	missing.check(g.Label.Text != "", "label")
	if err := missing.err("option_group"); err != nil {
		return err
	}
	return requiredOptions("option_group", g.Options)
}

// MarshalJSON never emits a null option list.
func (g OptionGroup) MarshalJSON() ([]byte, error) {
	type alias OptionGroup
	g.Options = nonNil(g.Options)
	return json.Marshal(alias(g))
}

// ConversationType is a conversation kind accepted by a ConversationFilter.
type ConversationType string

const (
	ConversationTypeIM      ConversationType = "im"
	ConversationTypeMPIM    ConversationType = "mpim"
	ConversationTypePrivate ConversationType = "private"
	ConversationTypePublic  ConversationType = "public"
)

// Validate checks if the ConversationType is a valid enum value.
func (ct ConversationType) Validate() error {
	switch ct {
	case ConversationTypeIM, ConversationTypeMPIM, ConversationTypePrivate, ConversationTypePublic:
		return nil
	default:
		return fmt.Errorf("unknown conversation type: %q", ct)
	}
}

// ConversationFilter restricts the conversations offered by conversation selects.
type ConversationFilter struct {
	Include                       []ConversationType `json:"include,omitzero"`
	ExcludeExternalSharedChannels *bool              `json:"exclude_external_shared_channels,omitempty"`
	ExcludeBotUsers               *bool              `json:"exclude_bot_users,omitempty"`
}

// Validate checks the filter's conversation types.
func (f *ConversationFilter) Validate() error {
	for i, ct := range f.Include {
		if err := ct.Validate(); err != nil {
			return atIndex("include", i, err)
		}
	}
	return nil
}

// InteractionType names the input events that dispatch a block_actions payload.
type InteractionType string

const (
	InteractionOnEnterPressed     InteractionType = "on_enter_pressed"
	InteractionOnCharacterEntered InteractionType = "on_character_entered"
)

// Validate checks if the InteractionType is a valid enum value.
func (it InteractionType) Validate() error {
	switch it {
	case InteractionOnEnterPressed, InteractionOnCharacterEntered:
		return nil
	default:
		return fmt.Errorf("unknown interaction type: %q", it)
	}
}

// DispatchActionConfig determines when a text input dispatches an interaction.
type DispatchActionConfig struct {
	TriggerActionsOn []InteractionType `json:"trigger_actions_on,omitzero"`
}

// Validate checks every interaction type.
func (c *DispatchActionConfig) Validate() error {
	for i, it := range c.TriggerActionsOn {
		if err := it.Validate(); err != nil {
			return atIndex("trigger_actions_on", i, err)
		}
	}
	return nil
}

// SlackFile references an image uploaded to the platform, by ID or by URL.
// Exactly one of the two is set.
type SlackFile struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// Validate checks that exactly one reference is set.
func (f *SlackFile) Validate() error {
	switch {
	case f.ID == "" && f.URL == "":
		return Missing("slack_file", "id|url")
	case f.ID != "" && f.URL != "":
		return Conflict("slack_file", "id and url are mutually exclusive", "id", "url")
	}
	return nil
}

// InputParameter is a customizable input passed to a workflow trigger.
type InputParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Trigger is a link trigger for a workflow.
type Trigger struct {
	URL                         string           `json:"url"`
	CustomizableInputParameters []InputParameter `json:"customizable_input_parameters,omitzero"`
}

// Workflow links a workflow button to its trigger.
type Workflow struct {
	Trigger Trigger `json:"trigger"`
}

// Validate checks the trigger URL and its parameters.
func (w *Workflow) Validate() error {
	var missing requiredFields
	missing.check(w.Trigger.URL != "", "trigger.url")
	if err := missing.err("workflow"); err != nil {
		return err
	}
	for i, p := range w.Trigger.CustomizableInputParameters {
		var pm requiredFields
		pm.check(p.Name != "", "name")
		pm.check(p.Value != "", "value")
		if err := pm.err("input_parameter"); err != nil {
			return atIndex("trigger.customizable_input_parameters", i, err)
		}
	}
	return nil
}

// requiredOptions validates a list that must hold at least one option.
func requiredOptions(node string, options []Option) error {
	if len(options) == 0 {
		return Missing(node, "options")
	}
	return validateOptions("options", options)
}

func validateOptions(path string, options []Option) error {
	for i := range options {
		if err := options[i].Validate(); err != nil {
			return atIndex(path, i, err)
		}
	}
	return nil
}

func validateOptionGroups(path string, groups []OptionGroup) error {
	for i := range groups {
		if err := groups[i].Validate(); err != nil {
			return atIndex(path, i, err)
		}
	}
	return nil
}
