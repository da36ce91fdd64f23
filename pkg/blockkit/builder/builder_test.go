package builder

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

func TestPlainTextBuilder(t *testing.T) {
	assert.Equal(t,
		blockkit.PlainText{Text: "A message with plain text."},
		NewPlainText("A message with plain text.").Build())

	assert.Equal(t,
		blockkit.PlainText{Text: "hi :wave:", Emoji: blockkit.Bool(true)},
		NewPlainText("hi :wave:").Emoji(true).Build())
}

func TestMarkdownBuilder(t *testing.T) {
	text := "A message *with some bold text* and _some italicized text_."

	assert.Equal(t, blockkit.Markdown{Text: text}, NewMarkdown(text).Build())
	assert.Equal(t,
		blockkit.Markdown{Text: text, Verbatim: blockkit.Bool(true)},
		NewMarkdown(text).Verbatim(true).Build())
}

func TestConfirmationDialogBuilder(t *testing.T) {
	t.Run("primary style", func(t *testing.T) {
		d, err := NewConfirmationDialog().
			Title("Are you sure?").
			Text("Wouldn't you prefer a good game of chess?").
			Confirm("Do it :grinning:", Emoji(true)).
			Deny("Stop, I've changed my mind!").
			PrimaryStyle().
			Build()
		require.NoError(t, err)
		assert.Equal(t, blockkit.ConfirmationDialog{
			Title:   blockkit.PlainText{Text: "Are you sure?"},
			Text:    blockkit.PlainText{Text: "Wouldn't you prefer a good game of chess?"},
			Confirm: blockkit.PlainText{Text: "Do it :grinning:", Emoji: blockkit.Bool(true)},
			Deny:    blockkit.PlainText{Text: "Stop, I've changed my mind!"},
			Style:   blockkit.StylePrimary,
		}, d)
	})

	t.Run("style unset by default", func(t *testing.T) {
		d, err := NewConfirmationDialog().Title("t").Text("x").Confirm("y").Deny("n").Build()
		require.NoError(t, err)
		assert.Equal(t, blockkit.Style(""), d.Style)
	})

	t.Run("missing fields are named", func(t *testing.T) {
		_, err := NewConfirmationDialog().Title("Are you sure?").DangerStyle().Build()
		require.Error(t, err)
		assert.True(t, blockkit.IsIncomplete(err))

		var fe *blockkit.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, []string{"text", "confirm", "deny"}, fe.Fields)
	})
}

func TestConfirmationDialogBuilder_CompletenessGate(t *testing.T) {
	setters := map[string]func(*ConfirmationDialogBuilder){
		"title":   func(b *ConfirmationDialogBuilder) { b.Title("t") },
		"text":    func(b *ConfirmationDialogBuilder) { b.Text("x") },
		"confirm": func(b *ConfirmationDialogBuilder) { b.Confirm("y") },
		"deny":    func(b *ConfirmationDialogBuilder) { b.Deny("n") },
	}

	for skipped := range setters {
		t.Run("without "+skipped, func(t *testing.T) {
			b := NewConfirmationDialog()
			for name, set := range setters {
				if name != skipped {
					set(b)
				}
			}
			_, err := b.Build()
			require.Error(t, err)
			assert.True(t, blockkit.IsIncomplete(err))
			assert.Contains(t, err.Error(), skipped)
		})
	}
}

// clickMe configures the button used across the actions scenarios.
func clickMe(b *ButtonBuilder) {
	b.AccessibilityLabel("button").
		ActionID("button").
		Value("click_me_123").
		Confirm(func(c *ConfirmationDialogBuilder) {
			c.Title("Are you sure?").
				Text("Wouldn't you prefer a good game of chess?").
				Confirm("Do it").
				Deny("Stop, I've changed my mind! :grinning:", Emoji(true)).
				DangerStyle()
		}).
		FocusOnLoad(true).
		PrimaryStyle().
		URL("https://slack.com")
}

func expectedClickMe() blockkit.Button {
	return blockkit.Button{
		Actionable: blockkit.Actionable{ActionID: "button"},
		Text:       blockkit.PlainText{Text: "Click Me"},
		URL:        "https://slack.com",
		Value:      "click_me_123",
		Style:      blockkit.StylePrimary,
		Confirm: &blockkit.ConfirmationDialog{
			Title:   blockkit.PlainText{Text: "Are you sure?"},
			Text:    blockkit.PlainText{Text: "Wouldn't you prefer a good game of chess?"},
			Confirm: blockkit.PlainText{Text: "Do it"},
			Deny:    blockkit.PlainText{Text: "Stop, I've changed my mind! :grinning:", Emoji: blockkit.Bool(true)},
			Style:   blockkit.StyleDanger,
		},
		FocusOnLoad:        blockkit.Bool(true),
		AccessibilityLabel: "button",
	}
}

func TestElementsBuilder(t *testing.T) {
	elements, err := (&ElementsBuilder{}).Button("Click Me", clickMe).Build()
	require.NoError(t, err)
	assert.Equal(t, []blockkit.Element{expectedClickMe()}, elements)
}

func TestElementsBuilder_PreservesOrder(t *testing.T) {
	eb := &ElementsBuilder{}
	eb.Button("one", func(b *ButtonBuilder) { b.ActionID("e1") })
	eb.Add(NewDatePicker().ActionID("e2"))
	eb.Button("three", func(b *ButtonBuilder) { b.ActionID("e3") })

	elements, err := eb.Build()
	require.NoError(t, err)
	require.Len(t, elements, 3)

	var ids []string
	for _, e := range elements {
		id, _ := blockkit.ActionIDOf(e)
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)
}

func TestActionsBuilder(t *testing.T) {
	actions, err := NewActions().
		BlockID("actions1").
		Elements(func(e *ElementsBuilder) {
			e.Button("Click Me", clickMe)
		}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, blockkit.ActionsBlock{
		BlockID:  "actions1",
		Elements: []blockkit.Element{expectedClickMe()},
	}, actions)
}

func TestActionsBuilder_Empty(t *testing.T) {
	actions, err := NewActions().Build()
	require.NoError(t, err)
	assert.Empty(t, actions.BlockID)
	assert.NotNil(t, actions.Elements)
	assert.Empty(t, actions.Elements)
}

func TestActionsBuilder_IncompleteConfirm(t *testing.T) {
	_, err := NewActions().Elements(func(e *ElementsBuilder) {
		e.Button("Go", func(b *ButtonBuilder) {
			b.Confirm(func(c *ConfirmationDialogBuilder) { c.Title("only a title") })
		})
	}).Build()
	require.Error(t, err)
	assert.True(t, blockkit.IsIncomplete(err))
	assert.Contains(t, err.Error(), "elements[0]: confirm:")
}

func TestButtonBuilder_LastStyleWins(t *testing.T) {
	b, err := NewButton("Go").PrimaryStyle().DangerStyle().Build()
	require.NoError(t, err)
	assert.Equal(t, blockkit.StyleDanger, b.Style)

	b, err = NewButton("Go").Text("Stop").Build()
	require.NoError(t, err)
	assert.Equal(t, "Stop", b.Text.Text)
	assert.Nil(t, b.Confirm)
}

func TestSectionBuilder(t *testing.T) {
	t.Run("text with accessory", func(t *testing.T) {
		block, err := NewSection().
			Markdown("*Deploy* ready").
			Accessory(NewOverflow().ActionID("more").Option("Docs", "docs", func(o *OptionBuilder) {
				o.URL("https://example.com/docs")
			})).
			Build()
		require.NoError(t, err)
		section, ok := block.(blockkit.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, blockkit.NewMarkdown("*Deploy* ready"), section.Text)
		assert.IsType(t, blockkit.Overflow{}, section.Accessory)
	})

	t.Run("fields", func(t *testing.T) {
		block, err := NewSection().
			Field(NewMarkdown("*Env*")).
			Field(NewPlainText("prod")).
			Build()
		require.NoError(t, err)
		fields, ok := block.(blockkit.FieldsSectionBlock)
		require.True(t, ok)
		assert.Len(t, fields.Fields, 2)
		assert.Nil(t, fields.Text)
	})

	t.Run("accessory after fields is a conflict", func(t *testing.T) {
		_, err := NewSection().
			Field(NewMarkdown("a")).
			Accessory(NewButton("b")).
			Build()
		require.Error(t, err)
		assert.True(t, blockkit.IsInvariantViolation(err))
	})

	t.Run("fields after accessory is a conflict", func(t *testing.T) {
		_, err := NewSection().
			Markdown("x").
			Accessory(NewButton("b")).
			Field(NewMarkdown("a")).
			Build()
		require.Error(t, err)
		assert.True(t, blockkit.IsInvariantViolation(err))
	})

	t.Run("text shape without text is incomplete", func(t *testing.T) {
		_, err := NewSection().Build()
		assert.True(t, blockkit.IsIncomplete(err))
	})
}

func TestImageBuilder(t *testing.T) {
	img, err := NewImage("chart").URL("https://example.com/c.png").Title("Weekly").Build()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/c.png", img.ImageURL)
	assert.Nil(t, img.SlackFile)
	require.NotNil(t, img.Title)
	assert.Equal(t, "Weekly", img.Title.Text)

	img, err = NewImage("chart").SlackFileID("F123").Build()
	require.NoError(t, err)
	assert.Equal(t, &blockkit.SlackFile{ID: "F123"}, img.SlackFile)

	_, err = NewImage("chart").URL("https://x").SlackFileID("F123").Build()
	assert.True(t, blockkit.IsInvariantViolation(err))

	_, err = NewImage("chart").Build()
	assert.True(t, blockkit.IsIncomplete(err))

	_, err = NewImageElement("a").SlackFileURL("https://files/x").URL("https://x").Build()
	assert.True(t, blockkit.IsInvariantViolation(err))
}

func TestStaticSelectBuilder(t *testing.T) {
	s, err := NewStaticSelect().
		ActionID("env").
		Placeholder("Pick an environment").
		Option("Staging", "staging").
		Option("Production", "prod", func(o *OptionBuilder) { o.Description("careful") }).
		InitialOption("prod").
		Build()
	require.NoError(t, err)
	require.Len(t, s.Options, 2)
	require.NotNil(t, s.InitialOption)
	assert.Equal(t, "prod", s.InitialOption.Value)
	assert.Equal(t, "careful", s.InitialOption.Description.Text)

	grouped, err := NewStaticSelect().
		Group("EU", func(g *OptionGroupBuilder) { g.Option("Dublin", "eu-west-1") }).
		Group("US", func(g *OptionGroupBuilder) { g.Option("Virginia", "us-east-1") }).
		InitialOption("us-east-1").
		Build()
	require.NoError(t, err)
	assert.Len(t, grouped.OptionGroups, 2)
	assert.Equal(t, "us-east-1", grouped.InitialOption.Value)

	_, err = NewStaticSelect().
		Option("a", "a").
		Group("g", func(g *OptionGroupBuilder) { g.Option("b", "b") }).
		Build()
	assert.True(t, blockkit.IsInvariantViolation(err))

	_, err = NewStaticSelect().Option("a", "a").InitialOption("missing").Build()
	assert.True(t, blockkit.IsInvariantViolation(err))

	_, err = NewStaticSelect().Build()
	assert.True(t, blockkit.IsIncomplete(err))
}

func TestCheckboxesAndRadioButtons(t *testing.T) {
	c, err := NewCheckboxes().
		ActionID("features").
		Option("*Logs*", "logs", func(o *OptionBuilder) { o.Markdown() }).
		Option("Metrics", "metrics").
		InitialOptions("metrics").
		Build()
	require.NoError(t, err)
	assert.Equal(t, blockkit.NewMarkdown("*Logs*"), c.Options[0].Text)
	require.Len(t, c.InitialOptions, 1)
	assert.Equal(t, "metrics", c.InitialOptions[0].Value)

	r, err := NewRadioButtons().Option("Yes", "y").Option("No", "n").InitialOption("n").Build()
	require.NoError(t, err)
	assert.Equal(t, "n", r.InitialOption.Value)

	_, err = NewCheckboxes().Option("", "x").Build()
	assert.True(t, blockkit.IsIncomplete(err))
}

func TestPickerBuilders(t *testing.T) {
	d, err := NewDatePicker().InitialDate(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)).Build()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.InitialDate)

	loc, err := time.LoadLocation("UTC")
	require.NoError(t, err)
	tp, err := NewTimepicker().InitialTime(9, 5).Timezone(loc).Build()
	require.NoError(t, err)
	assert.Equal(t, "09:05", tp.InitialTime)
	assert.Equal(t, "UTC", tp.Timezone)

	_, err = NewTimepicker().InitialTime(123, 0).Build()
	assert.True(t, blockkit.IsInvariantViolation(err))
}

func TestPlainTextInputBuilder(t *testing.T) {
	p, err := NewPlainTextInput().
		ActionID("reason").
		Multiline(true).
		Length(-1, 200).
		DispatchOn(blockkit.InteractionOnEnterPressed).
		Build()
	require.NoError(t, err)
	assert.Nil(t, p.MinLength)
	assert.Equal(t, 200, *p.MaxLength)
	assert.Equal(t, []blockkit.InteractionType{blockkit.InteractionOnEnterPressed}, p.DispatchActionConfig.TriggerActionsOn)

	_, err = NewPlainTextInput().Length(10, 5).Build()
	assert.True(t, blockkit.IsInvariantViolation(err))
}

func TestInputBuilder(t *testing.T) {
	in, err := NewInput("Reason", NewPlainTextInput().ActionID("reason")).Hint("Be brief").Optional(true).Build()
	require.NoError(t, err)
	assert.Equal(t, "Reason", in.Label.Text)
	assert.Equal(t, blockkit.ElementTypePlainTextInput, in.Element.ElementType())

	_, err = NewInput("Pick", NewButton("no")).Build()
	assert.True(t, blockkit.IsInvariantViolation(err))

	_, err = NewInput("Pick", nil).Build()
	assert.True(t, blockkit.IsIncomplete(err))
}

func TestRichTextBuilder(t *testing.T) {
	rt, err := NewRichText().
		BlockID("notes").
		Section(func(s *RichTextSectionBuilder) {
			s.Text("Hello ").Bold("world").Emoji("wave").User("U123")
		}).
		List(blockkit.RichTextListBullet, func(l *RichTextListBuilder) {
			l.Item(func(s *RichTextSectionBuilder) { s.Text("one") }).
				Item(func(s *RichTextSectionBuilder) { s.Link("https://example.com", "two") }).
				Indent(1)
		}).
		Preformatted(func(s *RichTextSectionBuilder) { s.Text("go test ./...") }).
		Quote(func(s *RichTextSectionBuilder) { s.Italic("quoted") }).
		Build()
	require.NoError(t, err)
	require.Len(t, rt.Elements, 4)

	section := rt.Elements[0].(blockkit.RichTextSection)
	assert.Len(t, section.Elements, 4)
	assert.Equal(t, blockkit.RichTextText{Text: "world", Style: &blockkit.RichTextStyle{Bold: blockkit.Bool(true)}}, section.Elements[1])

	list := rt.Elements[1].(blockkit.RichTextList)
	assert.Equal(t, blockkit.RichTextListBullet, list.Style)
	assert.Len(t, list.Elements, 2)
	assert.Equal(t, 1, *list.Indent)

	_, err = NewRichText().Section(func(s *RichTextSectionBuilder) { s.Channel("") }).Build()
	assert.True(t, blockkit.IsIncomplete(err))
}

func TestOtherBlockBuilders(t *testing.T) {
	assert.Equal(t, blockkit.DividerBlock{BlockID: "d"}, NewDivider().BlockID("d").Build())

	h, err := NewHeader("Release", Emoji(true)).Build()
	require.NoError(t, err)
	assert.Equal(t, blockkit.PlainText{Text: "Release", Emoji: blockkit.Bool(true)}, h.Text)

	_, err = NewHeader("").Build()
	assert.True(t, blockkit.IsIncomplete(err))

	f, err := NewFile("ABCD1").Build()
	require.NoError(t, err)
	assert.Equal(t, blockkit.FileSourceRemote, f.Source)

	v, err := NewVideo("Demo", "demo", "https://x/embed", "https://x/t.png").
		Provider("Example", "https://x/icon.png").
		Description("A short demo").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "Example", v.ProviderName)
	assert.Equal(t, "A short demo", v.Description.Text)

	_, err = NewVideo("Demo", "", "", "").Build()
	assert.True(t, blockkit.IsIncomplete(err))

	ctx, err := NewContext().
		Markdown("by *ops*").
		PlainText("v1", Emoji(false)).
		Image(NewImageElement("avatar").URL("https://x/a.png")).
		Build()
	require.NoError(t, err)
	require.Len(t, ctx.Elements, 3)
	assert.IsType(t, blockkit.ImageElement{}, ctx.Elements[2])
}

func TestBlocksBuilder(t *testing.T) {
	msg, err := NewBlocks().
		Text("Deploy finished").
		Header("Deploy finished").
		Section(func(s *SectionBuilder) { s.Markdown("*api* is live") }).
		Divider().
		Actions(func(a *ActionsBuilder) {
			a.Elements(func(e *ElementsBuilder) { e.Button("Roll back", func(b *ButtonBuilder) { b.DangerStyle() }) })
		}).
		Context(func(c *ContextBuilder) { c.Markdown("took 42s") }).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "Deploy finished", msg.Text)

	var types []blockkit.BlockType
	for _, b := range msg.Blocks {
		types = append(types, b.BlockType())
	}
	assert.Equal(t, []blockkit.BlockType{
		blockkit.BlockTypeHeader, blockkit.BlockTypeSection, blockkit.BlockTypeDivider,
		blockkit.BlockTypeActions, blockkit.BlockTypeContext,
	}, types)

	_, err = NewBlocks().Divider().Section(func(s *SectionBuilder) {}).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocks[1]")
}

func TestOptionListsAreRequired(t *testing.T) {
	tests := []struct {
		name  string
		build func() (blockkit.Element, error)
	}{
		{"overflow", NewOverflow().ActionID("o").BuildElement},
		{"checkboxes", NewCheckboxes().ActionID("c").BuildElement},
		{"radio buttons", NewRadioButtons().ActionID("r").BuildElement},
		{"empty option group", NewStaticSelect().Group("g", func(*OptionGroupBuilder) {}).BuildElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
			assert.True(t, blockkit.IsIncomplete(err), "unexpected error kind: %v", err)
			assert.Contains(t, err.Error(), "options")
		})
	}
}

func TestBuiltElementsRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		builder ElementBuilder
	}{
		{"button", NewButton("Click Me").ActionID("button").Confirm(func(c *ConfirmationDialogBuilder) {
			c.Title("t").Text("x").Confirm("y").Deny("n")
		})},
		{"overflow", NewOverflow().ActionID("o").Option("Docs", "docs", func(o *OptionBuilder) { o.URL("https://x/docs") })},
		{"checkboxes", NewCheckboxes().ActionID("c").Option("A", "a").Option("B", "b").InitialOptions("b")},
		{"checkboxes without initial", NewCheckboxes().ActionID("c").Option("A", "a")},
		{"radio buttons", NewRadioButtons().ActionID("r").Option("Yes", "y").InitialOption("y")},
		{"static select", NewStaticSelect().ActionID("s").Option("A", "a").Placeholder("Pick")},
		{"grouped static select", NewStaticSelect().ActionID("g").Group("G", func(g *OptionGroupBuilder) { g.Option("A", "a") })},
		{"date picker", NewDatePicker().ActionID("d")},
		{"timepicker", NewTimepicker().ActionID("t").InitialTime(9, 30)},
		{"plain text input", NewPlainTextInput().ActionID("p").Multiline(true)},
		{"image", NewImageElement("alt").URL("https://x/a.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built, err := tt.builder.BuildElement()
			require.NoError(t, err)

			data, err := json.Marshal(built)
			require.NoError(t, err)
			decoded, err := blockkit.DecodeElement(data)
			require.NoError(t, err)
			assert.Equal(t, built, decoded)
		})
	}
}

func TestBuiltBlocksRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		builder BlockBuilder
	}{
		{"empty actions", NewActions().BlockID("a")},
		{"actions", NewActions().Elements(func(e *ElementsBuilder) { e.Button("Go") })},
		{"context", NewContext().Markdown("*m*").PlainText("p")},
		{"divider", NewDivider()},
		{"header", NewHeader("H")},
		{"section with accessory", NewSection().Markdown("x").Accessory(NewOverflow().Option("A", "a"))},
		{"fields section", NewSection().Field(NewPlainText("a")).Field(NewMarkdown("b"))},
		{"image", NewImage("alt").SlackFileID("F1")},
		{"input", NewInput("Reason", NewPlainTextInput())},
		{"empty rich text", NewRichText()},
		{"rich text with empty children", NewRichText().
			Section(func(*RichTextSectionBuilder) {}).
			List(blockkit.RichTextListBullet, func(*RichTextListBuilder) {}).
			Preformatted(func(*RichTextSectionBuilder) {}).
			Quote(func(*RichTextSectionBuilder) {})},
		{"rich text", NewRichText().Section(func(s *RichTextSectionBuilder) { s.Bold("hi").Link("https://x", "") })},
		{"video", NewVideo("Demo", "demo", "https://x/embed", "https://x/t.png")},
		{"file", NewFile("ABCD1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built, err := tt.builder.BuildBlock()
			require.NoError(t, err)

			data, err := json.Marshal(built)
			require.NoError(t, err)
			decoded, err := blockkit.DecodeBlock(data)
			require.NoError(t, err)
			assert.Equal(t, built, decoded)
		})
	}
}

func TestButtonBuilder_Incomplete(t *testing.T) {
	_, err := NewButton("").ActionID("b").Build()
	require.Error(t, err)
	assert.True(t, blockkit.IsIncomplete(err))
	assert.Contains(t, err.Error(), "text")

	_, err = NewButton("Go").Confirm(func(c *ConfirmationDialogBuilder) { c.Title("t") }).Build()
	require.Error(t, err)
	assert.True(t, blockkit.IsIncomplete(err))
	assert.Contains(t, err.Error(), "confirm")
}
