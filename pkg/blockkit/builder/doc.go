// Package builder assembles blockkit nodes through chained, single-use builders.
//
// Each builder is mutable scratch state: configure it, call Build once, discard it.
// Build performs every required-field and exclusivity check in one place and either
// returns a fully valid node or an error wrapping blockkit.ErrIncomplete or
// blockkit.ErrInvariant. Builders are not safe for concurrent use; built nodes are.
//
//	actions, err := builder.NewActions().
//		BlockID("actions1").
//		Elements(func(e *builder.ElementsBuilder) {
//			e.Button("Click Me", func(b *builder.ButtonBuilder) {
//				b.ActionID("button").Value("click_me_123").PrimaryStyle()
//			})
//		}).
//		Build()
//
// Setting both sides of an exclusive pair (a section's accessory and fields, an image's
// URL and file) is recorded when the second side is set and reported by Build.
package builder
