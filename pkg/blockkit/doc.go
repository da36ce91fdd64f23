// Package blockkit provides type-safe Go definitions and the JSON wire codec
// for Block Kit message layouts.
//
// # Overview
//
// A message is an ordered list of blocks. Blocks hold elements (buttons, selects,
// inputs, images) and composition objects (text, confirmation dialogs, options).
// Every node is an immutable value: once built it is never mutated, so it can be
// shared freely between goroutines.
//
// # Closed Hierarchies
//
// Blocks, elements, text objects and rich text content are closed sets. Each is an
// interface with an unexported marker method, implemented only by the types in this
// package:
//
//   - Block: ActionsBlock, ContextBlock, DividerBlock, FileBlock, HeaderBlock,
//     ImageBlock, InputBlock, RichTextBlock, SectionBlock, FieldsSectionBlock, VideoBlock
//   - Element: Button, Checkboxes, the select and multi-select families, pickers,
//     text inputs, Overflow, RadioButtons, ImageElement, WorkflowButton
//   - Text: PlainText, Markdown
//   - RichTextElement and RichTextSubElement for the rich text tree
//
// Shared field groups are embedded: Actionable adds action_id to every element except
// ImageElement, and MultiSelectFields adds confirm, focus_on_load, max_selected_items
// and placeholder to the multi-selects.
//
// # Invariants
//
// Validate reports a *FieldError wrapping one of three kinds:
//
//   - ErrIncomplete: a required field is missing
//   - ErrInvariant: both or neither side of an exclusive group is set (a section's
//     fields vs accessory, an image's URL vs file, a SlackFile's id vs url), or a
//     value is inconsistent with its variant
//   - ErrUnknownType: a "type" discriminator names no known variant
//
// Documented length and count ceilings are advisory. CheckLimits reports them as
// warnings and never fails.
//
// # Usage Example
//
//	import "github.com/dyluth/blockkit/pkg/blockkit"
//
//	msg := blockkit.Message{
//		Text: "Deploy finished",
//		Blocks: blockkit.Blocks{
//			blockkit.HeaderBlock{Text: blockkit.NewPlainText("Deploy finished")},
//			blockkit.SectionBlock{Text: blockkit.NewMarkdown("*api* is live")},
//		},
//	}
//	if err := msg.Validate(); err != nil {
//		log.Fatal(err)
//	}
//	data, err := json.Marshal(msg)
//
//	// And back again
//	decoded, err := blockkit.DecodeMessage(data)
//
// Most callers build nodes through the builder subpackage rather than struct literals.
//
// # Wire Format
//
// Every node serializes as a JSON object with a snake_case "type" discriminator.
// Unset optional fields are omitted, never written as null. DecodeBlock,
// DecodeElement and DecodeText reconstruct nodes polymorphically; ParseMessage also
// checks the payload against an embedded JSON Schema first.
package blockkit
