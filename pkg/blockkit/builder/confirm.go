package builder

import "github.com/dyluth/blockkit/pkg/blockkit"

// ConfirmationDialogBuilder builds a confirm object. All four texts are required.
type ConfirmationDialogBuilder struct {
	title   *PlainTextBuilder
	text    *PlainTextBuilder
	confirm *PlainTextBuilder
	deny    *PlainTextBuilder
	style   blockkit.Style
}

// NewConfirmationDialog starts an empty confirmation dialog.
func NewConfirmationDialog() *ConfirmationDialogBuilder {
	return &ConfirmationDialogBuilder{}
}

// Title sets the dialog heading.
func (b *ConfirmationDialogBuilder) Title(text string, opts ...PlainTextOption) *ConfirmationDialogBuilder {
	b.title = plainText(text, opts)
	return b
}

// Text sets the dialog body.
func (b *ConfirmationDialogBuilder) Text(text string, opts ...PlainTextOption) *ConfirmationDialogBuilder {
	b.text = plainText(text, opts)
	return b
}

// Confirm sets the label of the confirming button.
func (b *ConfirmationDialogBuilder) Confirm(text string, opts ...PlainTextOption) *ConfirmationDialogBuilder {
	b.confirm = plainText(text, opts)
	return b
}

// Deny sets the label of the cancelling button.
func (b *ConfirmationDialogBuilder) Deny(text string, opts ...PlainTextOption) *ConfirmationDialogBuilder {
	b.deny = plainText(text, opts)
	return b
}

// PrimaryStyle renders the confirm button as primary.
func (b *ConfirmationDialogBuilder) PrimaryStyle() *ConfirmationDialogBuilder {
	b.style = blockkit.StylePrimary
	return b
}

// DangerStyle renders the confirm button as destructive.
func (b *ConfirmationDialogBuilder) DangerStyle() *ConfirmationDialogBuilder {
	b.style = blockkit.StyleDanger
	return b
}

// Build returns ErrIncomplete naming every text that was never set.
func (b *ConfirmationDialogBuilder) Build() (blockkit.ConfirmationDialog, error) {
	var missing []string
	for _, f := range []struct {
		name string
		set  *PlainTextBuilder
	}{{"title", b.title}, {"text", b.text}, {"confirm", b.confirm}, {"deny", b.deny}} {
		if f.set == nil {
			missing = append(missing, f.name)
		}
	}
	if err := blockkit.Missing("confirm", missing...); err != nil {
		return blockkit.ConfirmationDialog{}, err
	}

	d := blockkit.ConfirmationDialog{
		Title:   b.title.Build(),
		Text:    b.text.Build(),
		Confirm: b.confirm.Build(),
		Deny:    b.deny.Build(),
		Style:   b.style,
	}
	if err := d.Validate(); err != nil {
		return blockkit.ConfirmationDialog{}, err
	}
	return d, nil
}

// buildConfirm runs configure against a fresh dialog builder, or returns nil when configure is nil.
func buildConfirm(configure func(*ConfirmationDialogBuilder)) (*blockkit.ConfirmationDialog, error) {
	if configure == nil {
		return nil, nil
	}
	cb := NewConfirmationDialog()
	configure(cb)
	d, err := cb.Build()
	if err != nil {
		return nil, err
	}
	return &d, nil
}
