package blockkit

// Shared sample nodes for codec and validation tests.

func sampleDialog() *ConfirmationDialog {
	return &ConfirmationDialog{
		Title:   NewPlainText("Are you sure?"),
		Text:    NewPlainText("Wouldn't you prefer a good game of chess?"),
		Confirm: NewPlainText("Do it"),
		Deny:    PlainText{Text: "Stop, I've changed my mind!", Emoji: Bool(true)},
		Style:   StyleDanger,
	}
}

func sampleOptions() []Option {
	return []Option{
		{Text: NewPlainText("Alpha"), Value: "a", Description: &PlainText{Text: "first"}},
		{Text: NewMarkdown("*Beta*"), Value: "b"},
	}
}

func sampleRichText() RichTextBlock {
	return RichTextBlock{
		BlockID: "rt1",
		Elements: []RichTextElement{
			RichTextSection{Elements: []RichTextSubElement{
				RichTextText{Text: "Hello ", Style: &RichTextStyle{Bold: Bool(true)}},
				RichTextLink{URL: "https://example.com", Text: "link"},
				RichTextEmoji{Name: "wave"},
				RichTextChannel{ChannelID: "C123", Style: &RichTextMentionStyle{Highlight: Bool(true)}},
				RichTextUser{UserID: "U123"},
				RichTextUserGroup{UserGroupID: "S123"},
			}},
			RichTextList{
				Style: RichTextListOrdered,
				Elements: []RichTextSection{
					{Elements: []RichTextSubElement{RichTextText{Text: "one"}}},
					{Elements: []RichTextSubElement{RichTextText{Text: "two"}}},
				},
				Indent: Int(1),
			},
			RichTextPreformatted{Elements: []RichTextSubElement{RichTextText{Text: "go test ./..."}}, Border: Int(0)},
			RichTextQuote{Elements: []RichTextSubElement{RichTextText{Text: "quoted"}}},
		},
	}
}

// sampleElements holds one fully populated value per element variant.
func sampleElements() map[ElementType]Element {
	placeholder := &PlainText{Text: "Pick one"}
	options := sampleOptions()
	richText := sampleRichText()
	return map[ElementType]Element{
		ElementTypeButton: Button{
			Actionable:         Actionable{ActionID: "approve"},
			Text:               NewPlainText("Approve"),
			URL:                "https://slack.com",
			Value:              "click_me_123",
			Style:              StylePrimary,
			Confirm:            sampleDialog(),
			FocusOnLoad:        Bool(false),
			AccessibilityLabel: "button",
		},
		ElementTypeCheckboxes: Checkboxes{
			Actionable:     Actionable{ActionID: "cb"},
			Options:        options,
			InitialOptions: []Option{options[1]},
			Confirm:        sampleDialog(),
		},
		ElementTypeDatePicker: DatePicker{
			Actionable:  Actionable{ActionID: "date"},
			InitialDate: "2024-02-29",
			Placeholder: placeholder,
		},
		ElementTypeDatetimePicker: DatetimePicker{
			Actionable:      Actionable{ActionID: "dt"},
			InitialDateTime: func() *int64 { v := int64(1628633820); return &v }(),
		},
		ElementTypeEmailInput: EmailInput{
			Actionable:           Actionable{ActionID: "email"},
			InitialValue:         "ops@example.com",
			DispatchActionConfig: &DispatchActionConfig{TriggerActionsOn: []InteractionType{InteractionOnEnterPressed}},
		},
		ElementTypeFileInput: FileInput{
			Actionable: Actionable{ActionID: "upload"},
			FileTypes:  []FileExtension{FileExtensionPDF, FileExtensionPNG},
			MaxFiles:   Int(3),
		},
		ElementTypeImage: ImageElement{
			AltText:  "logo",
			ImageURL: "https://example.com/logo.png",
		},
		ElementTypeMultiStaticSelect: MultiStaticSelect{
			Actionable:        Actionable{ActionID: "ms"},
			MultiSelectFields: MultiSelectFields{MaxSelectedItems: Int(2), Placeholder: placeholder},
			OptionGroups:      []OptionGroup{{Label: NewPlainText("Group"), Options: options}},
		},
		ElementTypeMultiExternalSelect: MultiExternalSelect{
			Actionable:        Actionable{ActionID: "mext"},
			MultiSelectFields: MultiSelectFields{FocusOnLoad: Bool(true)},
			MinQueryLength:    Int(3),
			InitialOptions:    []Option{options[0]},
		},
		ElementTypeMultiUsersSelect: MultiUsersSelect{
			Actionable:   Actionable{ActionID: "mu"},
			InitialUsers: []string{"U1", "U2"},
		},
		ElementTypeMultiConversationsSelect: MultiConversationsSelect{
			Actionable:           Actionable{ActionID: "mc"},
			MultiSelectFields:    MultiSelectFields{Confirm: sampleDialog()},
			InitialConversations: []string{"C1"},
			Filter:               &ConversationFilter{Include: []ConversationType{ConversationTypePublic, ConversationTypeIM}},
		},
		ElementTypeMultiChannelsSelect: MultiChannelsSelect{
			Actionable:      Actionable{ActionID: "mch"},
			InitialChannels: []string{"C1", "C2"},
		},
		ElementTypeNumberInput: NumberInput{
			Actionable:       Actionable{ActionID: "num"},
			IsDecimalAllowed: true,
			MinValue:         "0.5",
			MaxValue:         "10",
		},
		ElementTypeOverflow: Overflow{
			Actionable: Actionable{ActionID: "more"},
			Options: []Option{
				{Text: NewPlainText("Docs"), Value: "docs", URL: "https://example.com/docs"},
			},
		},
		ElementTypePlainTextInput: PlainTextInput{
			Actionable:  Actionable{ActionID: "pti"},
			Multiline:   Bool(true),
			MinLength:   Int(1),
			MaxLength:   Int(500),
			Placeholder: placeholder,
		},
		ElementTypeRadioButtons: RadioButtons{
			Actionable:    Actionable{ActionID: "radio"},
			Options:       options,
			InitialOption: &options[0],
		},
		ElementTypeRichTextInput: RichTextInput{
			Actionable:   Actionable{ActionID: "rti"},
			InitialValue: &richText,
		},
		ElementTypeStaticSelect: StaticSelect{
			Actionable:    Actionable{ActionID: "ss"},
			Options:       options,
			InitialOption: &options[1],
			Placeholder:   placeholder,
		},
		ElementTypeExternalSelect: ExternalSelect{
			Actionable:     Actionable{ActionID: "ext"},
			MinQueryLength: Int(0),
		},
		ElementTypeUsersSelect: UsersSelect{
			Actionable:  Actionable{ActionID: "user"},
			InitialUser: "U1",
		},
		ElementTypeConversationsSelect: ConversationsSelect{
			Actionable:                   Actionable{ActionID: "conv"},
			DefaultToCurrentConversation: Bool(true),
			ResponseURLEnabled:           Bool(true),
			Filter:                       &ConversationFilter{ExcludeBotUsers: Bool(true)},
		},
		ElementTypeChannelsSelect: ChannelsSelect{
			Actionable:     Actionable{ActionID: "chan"},
			InitialChannel: "C1",
		},
		ElementTypeTimepicker: Timepicker{
			Actionable:  Actionable{ActionID: "time"},
			InitialTime: "09:30",
			Timezone:    "Europe/London",
		},
		ElementTypeURLInput: URLInput{
			Actionable:   Actionable{ActionID: "url"},
			InitialValue: "https://example.com",
		},
		ElementTypeWorkflowButton: WorkflowButton{
			Actionable: Actionable{ActionID: "wf"},
			Text:       NewPlainText("Run workflow"),
			Workflow: Workflow{Trigger: Trigger{
				URL:                         "https://slack.com/shortcuts/Ft0123/abc",
				CustomizableInputParameters: []InputParameter{{Name: "env", Value: "prod"}},
			}},
			Style: StylePrimary,
		},
	}
}

// sampleBlocks holds one fully populated value per block shape.
func sampleBlocks() []Block {
	return []Block{
		NewActionsBlock("actions1",
			sampleElements()[ElementTypeButton],
			sampleElements()[ElementTypeStaticSelect],
		),
		ContextBlock{BlockID: "ctx", Elements: []ContextElement{
			ImageElement{AltText: "avatar", SlackFile: &SlackFile{ID: "F123"}},
			NewMarkdown("deployed by *ops*"),
			PlainText{Text: "v1.2.3", Emoji: Bool(false)},
		}},
		DividerBlock{},
		FileBlock{BlockID: "f", ExternalID: "ABCD1", Source: FileSourceRemote},
		HeaderBlock{Text: NewPlainText("Release notes")},
		ImageBlock{
			AltText:  "chart",
			ImageURL: "https://example.com/chart.png",
			Title:    &PlainText{Text: "Weekly"},
		},
		InputBlock{
			BlockID:  "in",
			Label:    NewPlainText("Reason"),
			Element:  sampleElements()[ElementTypePlainTextInput],
			Hint:     &PlainText{Text: "Be brief"},
			Optional: Bool(true),
		},
		sampleRichText(),
		SectionBlock{
			BlockID:   "sec",
			Text:      Markdown{Text: "*Deploy* ready", Verbatim: Bool(true)},
			Accessory: sampleElements()[ElementTypeOverflow],
		},
		FieldsSectionBlock{
			Text:   NewPlainText("Summary"),
			Fields: []Text{NewMarkdown("*Env*\nprod"), NewPlainText("Owner: ops")},
		},
		VideoBlock{
			AltText:      "demo",
			Title:        NewPlainText("Demo"),
			ThumbnailURL: "https://example.com/thumb.png",
			VideoURL:     "https://example.com/embed",
			ProviderName: "Example",
		},
	}
}
