package commands

import (
	"github.com/dyluth/blockkit/internal/format"
	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/dyluth/blockkit/pkg/blockkit/builder"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a sample actions message built with the builder package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := exampleMessage()
			if err != nil {
				return newPrinter(cmd).Error("example failed to build", err.Error(), nil)
			}
			return format.FormatMessage(cmd.OutOrStdout(), &msg, compact)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Print on a single line")

	return cmd
}

func exampleMessage() (blockkit.Message, error) {
	return builder.NewBlocks().
		Actions(func(a *builder.ActionsBuilder) {
			a.BlockID("actions1").Elements(func(e *builder.ElementsBuilder) {
				e.Button("Click Me", func(b *builder.ButtonBuilder) {
					b.AccessibilityLabel("button").
						ActionID("button").
						Value("click_me_123").
						Confirm(func(c *builder.ConfirmationDialogBuilder) {
							c.Title("Are you sure?").
								Text("Wouldn't you prefer a good game of chess?").
								Confirm("Do it").
								Deny("Stop, I've changed my mind! :grinning:", builder.Emoji(true)).
								DangerStyle()
						}).
						FocusOnLoad(true).
						PrimaryStyle().
						URL("https://slack.com")
				})
			})
		}).
		Build()
}
