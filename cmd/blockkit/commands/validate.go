package commands

import (
	"errors"
	"fmt"

	"github.com/dyluth/blockkit/internal/format"
	"github.com/dyluth/blockkit/internal/payload"
	"github.com/dyluth/blockkit/internal/printer"
	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	var strict, skipSchema bool

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a payload against Block Kit rules",
		Long: `Validate a message payload (JSON or YAML).

Checks run in order:
  1. Structural JSON Schema (skip with --skip-schema)
  2. Decoding into typed blocks and elements, rejecting unknown types
  3. Required fields and mutually exclusive fields on every node
  4. Documented platform length and count limits (warnings only)

With --strict, any limit warning fails validation.

Examples:
  blockkit validate message.json
  cat message.yaml | blockkit validate - --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			cfg, err := opts.loadConfig(p)
			if err != nil {
				return err
			}
			strict = strict || cfg.Validation.Strict
			skipSchema = skipSchema || cfg.Validation.SkipSchema

			msg, err := readMessage(cmd, p, args[0], skipSchema)
			if err != nil {
				return err
			}

			warnings := blockkit.CheckLimits(msg.Blocks)
			if len(warnings) > 0 {
				p.Warning("%d value(s) exceed documented limits:\n", len(warnings))
				format.FormatWarnings(cmd.ErrOrStderr(), warnings)
				if strict {
					return p.Error(
						"limit check failed",
						"Slack will reject or truncate values beyond these limits.",
						[]string{"Shorten the reported values, or drop --strict to treat limits as warnings."},
					)
				}
			}

			p.Success("%s is valid (%s)\n", displayName(args[0]), pluralBlocks(len(msg.Blocks)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a documented limit is exceeded")
	cmd.Flags().BoolVar(&skipSchema, "skip-schema", false, "Skip the structural JSON Schema check")

	return cmd
}

// readMessage loads a payload file and decodes it, printing a formatted error on failure.
func readMessage(cmd *cobra.Command, p *printer.Printer, path string, skipSchema bool) (*blockkit.Message, error) {
	data, err := payload.ReadFile(path, cmd.InOrStdin())
	if err != nil {
		return nil, p.Error("cannot read payload", err.Error(), nil)
	}

	var msg *blockkit.Message
	if skipSchema {
		msg, err = blockkit.DecodeMessage(data)
	} else {
		msg, err = blockkit.ParseMessage(data)
	}
	if err != nil {
		return nil, p.ErrorWithContext(
			"invalid payload",
			err.Error(),
			map[string]string{"File": displayName(path), "Problem": problemKind(err)},
			nil,
		)
	}
	return msg, nil
}

// problemKind names the error family for display.
func problemKind(err error) string {
	switch {
	case blockkit.IsUnknownType(err):
		return "unknown type"
	case blockkit.IsIncomplete(err):
		return "missing required field"
	case blockkit.IsInvariantViolation(err):
		return "conflicting fields"
	}
	var schemaErr *jsonschema.ValidationError
	if errors.As(err, &schemaErr) {
		return "schema mismatch"
	}
	return "malformed JSON"
}

func displayName(path string) string {
	if path == payload.Stdin {
		return "stdin"
	}
	return path
}

func pluralBlocks(n int) string {
	if n == 1 {
		return "1 block"
	}
	return fmt.Sprintf("%d blocks", n)
}
