package commands

import (
	"github.com/dyluth/blockkit/internal/format"
	"github.com/dyluth/blockkit/internal/overlay"
	"github.com/dyluth/blockkit/internal/payload"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var (
		patchFile string
		patchType string
		compact   bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print a payload as canonical Block Kit JSON",
		Long: `Render decodes and validates a payload, optionally applies a patch, and
prints the canonical wire JSON: absent optional fields are omitted and keys
follow the field order of each block and element.

Patches:
  --patch-type=merge  RFC 7386 merge patch (default)
  --patch-type=json   RFC 6902 JSON patch operations

The patched payload is validated again before printing.

Examples:
  blockkit render message.yaml
  blockkit render message.json --patch prod.json --compact
  blockkit render message.json --patch ops.json --patch-type=json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			cfg, err := opts.loadConfig(p)
			if err != nil {
				return err
			}

			pt, err := overlay.ParsePatchType(patchType)
			if err != nil {
				return p.Error("invalid patch type", err.Error(), []string{"Valid types: merge, json"})
			}

			msg, err := readMessage(cmd, p, args[0], cfg.Validation.SkipSchema)
			if err != nil {
				return err
			}

			if patchFile != "" {
				patch, err := payload.ReadFile(patchFile, cmd.InOrStdin())
				if err != nil {
					return p.Error("cannot read patch", err.Error(), nil)
				}
				msg, err = overlay.ApplyMessage(msg, patch, pt)
				if err != nil {
					return p.ErrorWithContext(
						"patch failed",
						err.Error(),
						map[string]string{"Patch": displayName(patchFile), "Type": string(pt)},
						nil,
					)
				}
			}

			return format.FormatMessage(cmd.OutOrStdout(), msg, compact)
		},
	}

	cmd.Flags().StringVar(&patchFile, "patch", "", "Patch file applied before rendering")
	cmd.Flags().StringVar(&patchType, "patch-type", string(overlay.PatchMerge), "Patch format: merge or json")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print on a single line")

	return cmd
}
