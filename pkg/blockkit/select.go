package blockkit

import "encoding/json"

// Select menus
//
// Single selects carry their own confirm/focus/placeholder fields; the five
// multi-selects share them through MultiSelectFields.

func validateOptionSource(node string, options []Option, groups []OptionGroup) error {
	switch {
	case len(options) == 0 && len(groups) == 0:
		return Missing(node, "options|option_groups")
	case len(options) > 0 && len(groups) > 0:
		return Conflict(node, "options and option_groups are mutually exclusive", "options", "option_groups")
	}
	if err := validateOptions("options", options); err != nil {
		return err
	}
	return validateOptionGroups("option_groups", groups)
}

func validateInitialOption(o *Option) error {
	if o == nil {
		return nil
	}
	return at("initial_option", o.Validate())
}

func validatePrompt(confirm *ConfirmationDialog, placeholder *PlainText) error {
	if err := validateConfirm(confirm); err != nil {
		return err
	}
	return validatePlaceholder(placeholder)
}

// StaticSelect offers options (or option groups) defined in the payload.
type StaticSelect struct {
	Actionable
	Options       []Option            `json:"options,omitzero"`
	OptionGroups  []OptionGroup       `json:"option_groups,omitzero"`
	InitialOption *Option             `json:"initial_option,omitempty"`
	Confirm       *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad   *bool               `json:"focus_on_load,omitempty"`
	Placeholder   *PlainText          `json:"placeholder,omitempty"`
}

func (StaticSelect) ElementType() ElementType { return ElementTypeStaticSelect }
func (StaticSelect) isElement()               {}

func (s StaticSelect) Validate() error {
	if err := validateOptionSource(string(ElementTypeStaticSelect), s.Options, s.OptionGroups); err != nil {
		return err
	}
	if err := validateInitialOption(s.InitialOption); err != nil {
		return err
	}
	return validatePrompt(s.Confirm, s.Placeholder)
}

func (s StaticSelect) MarshalJSON() ([]byte, error) {
	type alias StaticSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeStaticSelect), body, err)
}

func (s *StaticSelect) UnmarshalJSON(data []byte) error {
	type alias StaticSelect
	return untag(data, string(ElementTypeStaticSelect), (*alias)(s))
}

// ExternalSelect loads its options from the app's options load URL.
type ExternalSelect struct {
	Actionable
	InitialOption  *Option             `json:"initial_option,omitempty"`
	MinQueryLength *int                `json:"min_query_length,omitempty"`
	Confirm        *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad    *bool               `json:"focus_on_load,omitempty"`
	Placeholder    *PlainText          `json:"placeholder,omitempty"`
}

func (ExternalSelect) ElementType() ElementType { return ElementTypeExternalSelect }
func (ExternalSelect) isElement()               {}

func (s ExternalSelect) Validate() error {
	if err := validateInitialOption(s.InitialOption); err != nil {
		return err
	}
	return validatePrompt(s.Confirm, s.Placeholder)
}

func (s ExternalSelect) MarshalJSON() ([]byte, error) {
	type alias ExternalSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeExternalSelect), body, err)
}

func (s *ExternalSelect) UnmarshalJSON(data []byte) error {
	type alias ExternalSelect
	return untag(data, string(ElementTypeExternalSelect), (*alias)(s))
}

// UsersSelect offers the workspace's users.
type UsersSelect struct {
	Actionable
	InitialUser string              `json:"initial_user,omitempty"`
	Confirm     *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad *bool               `json:"focus_on_load,omitempty"`
	Placeholder *PlainText          `json:"placeholder,omitempty"`
}

func (UsersSelect) ElementType() ElementType { return ElementTypeUsersSelect }
func (UsersSelect) isElement()               {}

func (s UsersSelect) Validate() error {
	return validatePrompt(s.Confirm, s.Placeholder)
}

func (s UsersSelect) MarshalJSON() ([]byte, error) {
	type alias UsersSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeUsersSelect), body, err)
}

func (s *UsersSelect) UnmarshalJSON(data []byte) error {
	type alias UsersSelect
	return untag(data, string(ElementTypeUsersSelect), (*alias)(s))
}

// ConversationsSelect offers conversations, optionally filtered.
type ConversationsSelect struct {
	Actionable
	InitialConversation          string              `json:"initial_conversation,omitempty"`
	DefaultToCurrentConversation *bool               `json:"default_to_current_conversation,omitempty"`
	ResponseURLEnabled           *bool               `json:"response_url_enabled,omitempty"`
	Filter                       *ConversationFilter `json:"filter,omitempty"`
	Confirm                      *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad                  *bool               `json:"focus_on_load,omitempty"`
	Placeholder                  *PlainText          `json:"placeholder,omitempty"`
}

func (ConversationsSelect) ElementType() ElementType { return ElementTypeConversationsSelect }
func (ConversationsSelect) isElement()               {}

func (s ConversationsSelect) Validate() error {
	if s.Filter != nil {
		if err := at("filter", s.Filter.Validate()); err != nil {
			return err
		}
	}
	return validatePrompt(s.Confirm, s.Placeholder)
}

func (s ConversationsSelect) MarshalJSON() ([]byte, error) {
	type alias ConversationsSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeConversationsSelect), body, err)
}

func (s *ConversationsSelect) UnmarshalJSON(data []byte) error {
	type alias ConversationsSelect
	return untag(data, string(ElementTypeConversationsSelect), (*alias)(s))
}

// ChannelsSelect offers public channels.
type ChannelsSelect struct {
	Actionable
	InitialChannel     string              `json:"initial_channel,omitempty"`
	ResponseURLEnabled *bool               `json:"response_url_enabled,omitempty"`
	Confirm            *ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad        *bool               `json:"focus_on_load,omitempty"`
	Placeholder        *PlainText          `json:"placeholder,omitempty"`
}

func (ChannelsSelect) ElementType() ElementType { return ElementTypeChannelsSelect }
func (ChannelsSelect) isElement()               {}

func (s ChannelsSelect) Validate() error {
	return validatePrompt(s.Confirm, s.Placeholder)
}

func (s ChannelsSelect) MarshalJSON() ([]byte, error) {
	type alias ChannelsSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeChannelsSelect), body, err)
}

func (s *ChannelsSelect) UnmarshalJSON(data []byte) error {
	type alias ChannelsSelect
	return untag(data, string(ElementTypeChannelsSelect), (*alias)(s))
}

// MultiStaticSelect lets the user pick several options defined in the payload.
type MultiStaticSelect struct {
	Actionable
	MultiSelectFields
	Options        []Option      `json:"options,omitzero"`
	OptionGroups   []OptionGroup `json:"option_groups,omitzero"`
	InitialOptions []Option      `json:"initial_options,omitzero"`
}

func (MultiStaticSelect) ElementType() ElementType { return ElementTypeMultiStaticSelect }
func (MultiStaticSelect) isElement()               {}

func (s MultiStaticSelect) Validate() error {
	if err := validateOptionSource(string(ElementTypeMultiStaticSelect), s.Options, s.OptionGroups); err != nil {
		return err
	}
	if err := validateOptions("initial_options", s.InitialOptions); err != nil {
		return err
	}
	return s.MultiSelectFields.validate()
}

func (s MultiStaticSelect) MarshalJSON() ([]byte, error) {
	type alias MultiStaticSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeMultiStaticSelect), body, err)
}

func (s *MultiStaticSelect) UnmarshalJSON(data []byte) error {
	type alias MultiStaticSelect
	return untag(data, string(ElementTypeMultiStaticSelect), (*alias)(s))
}

// MultiExternalSelect lets the user pick several externally loaded options.
type MultiExternalSelect struct {
	Actionable
	MultiSelectFields
	MinQueryLength *int     `json:"min_query_length,omitempty"`
	InitialOptions []Option `json:"initial_options,omitzero"`
}

func (MultiExternalSelect) ElementType() ElementType { return ElementTypeMultiExternalSelect }
func (MultiExternalSelect) isElement()               {}

func (s MultiExternalSelect) Validate() error {
	if err := validateOptions("initial_options", s.InitialOptions); err != nil {
		return err
	}
	return s.MultiSelectFields.validate()
}

func (s MultiExternalSelect) MarshalJSON() ([]byte, error) {
	type alias MultiExternalSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeMultiExternalSelect), body, err)
}

func (s *MultiExternalSelect) UnmarshalJSON(data []byte) error {
	type alias MultiExternalSelect
	return untag(data, string(ElementTypeMultiExternalSelect), (*alias)(s))
}

// MultiUsersSelect lets the user pick several users.
type MultiUsersSelect struct {
	Actionable
	MultiSelectFields
	InitialUsers []string `json:"initial_users,omitzero"`
}

func (MultiUsersSelect) ElementType() ElementType { return ElementTypeMultiUsersSelect }
func (MultiUsersSelect) isElement()               {}

func (s MultiUsersSelect) Validate() error {
	return s.MultiSelectFields.validate()
}

func (s MultiUsersSelect) MarshalJSON() ([]byte, error) {
	type alias MultiUsersSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeMultiUsersSelect), body, err)
}

func (s *MultiUsersSelect) UnmarshalJSON(data []byte) error {
	type alias MultiUsersSelect
	return untag(data, string(ElementTypeMultiUsersSelect), (*alias)(s))
}

// MultiConversationsSelect lets the user pick several conversations.
type MultiConversationsSelect struct {
	Actionable
	MultiSelectFields
	InitialConversations         []string            `json:"initial_conversations,omitzero"`
	DefaultToCurrentConversation *bool               `json:"default_to_current_conversation,omitempty"`
	Filter                       *ConversationFilter `json:"filter,omitempty"`
}

func (MultiConversationsSelect) ElementType() ElementType {
	return ElementTypeMultiConversationsSelect
}
func (MultiConversationsSelect) isElement() {}

func (s MultiConversationsSelect) Validate() error {
	if s.Filter != nil {
		if err := at("filter", s.Filter.Validate()); err != nil {
			return err
		}
	}
	return s.MultiSelectFields.validate()
}

func (s MultiConversationsSelect) MarshalJSON() ([]byte, error) {
	type alias MultiConversationsSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeMultiConversationsSelect), body, err)
}

func (s *MultiConversationsSelect) UnmarshalJSON(data []byte) error {
	type alias MultiConversationsSelect
	return untag(data, string(ElementTypeMultiConversationsSelect), (*alias)(s))
}

// MultiChannelsSelect lets the user pick several public channels.
type MultiChannelsSelect struct {
	Actionable
	MultiSelectFields
	InitialChannels []string `json:"initial_channels,omitzero"`
}

func (MultiChannelsSelect) ElementType() ElementType { return ElementTypeMultiChannelsSelect }
func (MultiChannelsSelect) isElement()               {}

func (s MultiChannelsSelect) Validate() error {
	return s.MultiSelectFields.validate()
}

func (s MultiChannelsSelect) MarshalJSON() ([]byte, error) {
	type alias MultiChannelsSelect
	body, err := json.Marshal(alias(s))
	return tagged(string(ElementTypeMultiChannelsSelect), body, err)
}

func (s *MultiChannelsSelect) UnmarshalJSON(data []byte) error {
	type alias MultiChannelsSelect
	return untag(data, string(ElementTypeMultiChannelsSelect), (*alias)(s))
}
