package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dyluth/blockkit/internal/filter"
	"github.com/dyluth/blockkit/internal/format"
	"github.com/dyluth/blockkit/internal/resolver"
	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/dyluth/blockkit/pkg/store"
	"github.com/spf13/cobra"
)

func newTemplateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save and inspect versioned payload templates in Redis",
		Long: `Templates are named, immutable snapshots of validated payloads. Saving a
name again creates the next version; older versions stay readable.

Redis location and namespace come from .blockkit.yml, BLOCKKIT_REDIS_URL and
BLOCKKIT_NAMESPACE, or --namespace.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newTemplateSaveCmd(opts),
		newTemplateGetCmd(opts),
		newTemplateShowCmd(opts),
		newTemplateListCmd(opts),
		newTemplateWatchCmd(opts),
	)

	return cmd
}

func newTemplateSaveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME FILE",
		Short: "Validate a payload and save it as the next version of NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)
			name, path := args[0], args[1]

			if err := store.ValidateName(name); err != nil {
				return p.Error("invalid template name", err.Error(), []string{"Use letters, digits, '-' and '_' only."})
			}

			client, cfg, err := opts.openStore(cmd.Context(), p)
			if err != nil {
				return err
			}
			defer client.Close()

			msg, err := readMessage(cmd, p, path, cfg.Validation.SkipSchema)
			if err != nil {
				return err
			}

			tmpl, err := client.SaveTemplate(cmd.Context(), name, *msg)
			if err != nil {
				return fmt.Errorf("failed to save template: %w", err)
			}

			p.Success("Saved template '%s' v%d (%s, %s)\n", tmpl.Name, tmpl.Version, tmpl.ID, pluralBlocks(len(tmpl.Payload.Blocks)))
			return nil
		},
	}
}

func newTemplateGetCmd(opts *globalOptions) *cobra.Command {
	var (
		version     int
		payloadOnly bool
		compact     bool
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print a template as pretty-printed JSON",
		Long: `Print the latest version of NAME, or a specific one with --version.

With --payload only the message is printed, ready to post to Slack.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)
			name := args[0]

			client, cfg, err := opts.openStore(cmd.Context(), p)
			if err != nil {
				return err
			}
			defer client.Close()

			var tmpl *store.Template
			if version > 0 {
				tmpl, err = client.GetVersion(cmd.Context(), name, version)
			} else {
				tmpl, err = client.GetLatest(cmd.Context(), name)
			}
			if store.IsNotFound(err) {
				what := fmt.Sprintf("template '%s'", name)
				if version > 0 {
					what = fmt.Sprintf("template '%s' v%d", name, version)
				}
				return p.ErrorWithContext(
					what+" not found",
					"No such template has been saved.",
					map[string]string{"Namespace": cfg.Namespace},
					[]string{"List saved templates:\n  blockkit template list"},
				)
			}
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}

			if payloadOnly {
				return format.FormatMessage(cmd.OutOrStdout(), &tmpl.Payload, compact)
			}
			return format.FormatSingleJSON(cmd.OutOrStdout(), tmpl)
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "Specific version (default latest)")
	cmd.Flags().BoolVar(&payloadOnly, "payload", false, "Print only the message payload")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print the payload on a single line (with --payload)")

	return cmd
}

func newTemplateShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a template version by ID",
		Long: `Print one template version by its ID. A unique prefix of at least
6 characters is enough, as shown in the ID column of "template list".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)
			shortID := args[0]

			client, _, err := opts.openStore(cmd.Context(), p)
			if err != nil {
				return err
			}
			defer client.Close()

			fullID, err := resolver.ResolveTemplateID(cmd.Context(), client, shortID)
			if err != nil {
				if resolver.IsNotFoundError(err) {
					return p.Error(
						fmt.Sprintf("template with ID '%s' not found", shortID),
						"No saved template version has that ID.",
						[]string{"List saved templates:\n  blockkit template list"},
					)
				}
				var ambig *resolver.AmbiguousError
				if errors.As(err, &ambig) {
					return p.Error("ambiguous short ID", resolver.FormatAmbiguousError(ambig), nil)
				}
				return p.Error("invalid template ID", err.Error(), nil)
			}

			tmpl, err := client.GetTemplate(cmd.Context(), fullID)
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}
			return format.FormatSingleJSON(cmd.OutOrStdout(), tmpl)
		},
	}
}

func newTemplateListCmd(opts *globalOptions) *cobra.Command {
	var (
		nameGlob     string
		blockType    string
		since        string
		until        string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the latest version of every template",
		Long: `List the latest version of every saved template.

Output Formats:
  default - Table with name, version, block count, age and a text preview
  jsonl   - Line-delimited JSON, one template per line

Filters:
  --name        Glob on template name ("deploy-*")
  --block-type  Payload contains this block type ("actions", "rich_text")
  --since       Saved after this time (duration, date or RFC3339)
  --until       Saved before this time (duration, date or RFC3339)

Examples:
  blockkit template list --block-type=actions --since=24h
  blockkit template list -o jsonl | jq -r .name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			outFmt, err := format.ParseOutputFormat(outputFormat)
			if err != nil {
				return p.Error("invalid output format", err.Error(), []string{"Valid formats: default, jsonl"})
			}

			criteria := &filter.Criteria{NameGlob: nameGlob}
			if blockType != "" {
				bt := blockkit.BlockType(blockType)
				if err := bt.Validate(); err != nil {
					return p.Error("invalid block type", err.Error(), nil)
				}
				criteria.BlockType = bt
			}
			if err := criteria.ParseRange(since, until, time.Now()); err != nil {
				return p.Error(
					"invalid time filter",
					err.Error(),
					[]string{"Use duration format like '1h30m' or RFC3339 like '2025-10-29T13:00:00Z'"},
				)
			}

			client, cfg, err := opts.openStore(cmd.Context(), p)
			if err != nil {
				return err
			}
			defer client.Close()

			templates, err := client.ListTemplates(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			return format.Templates(cmd.OutOrStdout(), criteria.Apply(templates), cfg.Namespace, outFmt)
		},
	}

	cmd.Flags().StringVar(&nameGlob, "name", "", "Filter by template name (glob pattern)")
	cmd.Flags().StringVar(&blockType, "block-type", "", "Filter by contained block type")
	cmd.Flags().StringVar(&since, "since", "", "Show templates saved after time (duration, date or RFC3339)")
	cmd.Flags().StringVar(&until, "until", "", "Show templates saved before time (duration, date or RFC3339)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", string(format.OutputFormatDefault), "Output format: default or jsonl")

	return cmd
}

func newTemplateWatchCmd(opts *globalOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream template saves as JSONL",
		Long: `Print every template saved in the namespace as one JSON line, until
interrupted or until --count saves have been seen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)
			ctx := cmd.Context()

			client, _, err := opts.openStore(ctx, p)
			if err != nil {
				return err
			}
			defer client.Close()

			sub, err := client.SubscribeTemplateEvents(ctx)
			if err != nil {
				return fmt.Errorf("failed to subscribe: %w", err)
			}
			defer sub.Close()

			out := json.NewEncoder(cmd.OutOrStdout())
			seen := 0
			for {
				select {
				case <-ctx.Done():
					return nil
				case err, ok := <-sub.Errors():
					if !ok {
						return nil
					}
					p.Warning("%v\n", err)
				case tmpl, ok := <-sub.Events():
					if !ok {
						return nil
					}
					if err := out.Encode(tmpl); err != nil {
						return fmt.Errorf("failed to write event: %w", err)
					}
					seen++
					if count > 0 && seen >= count {
						return nil
					}
				}
			}
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Exit after this many saves (0 = unlimited)")

	return cmd
}
