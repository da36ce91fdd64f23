package commands

import (
	"strings"

	"github.com/dyluth/blockkit/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		force bool
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter .blockkit.yml and example payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			created, err := scaffold.Initialize(dir, force)
			if err != nil {
				if strings.HasPrefix(err.Error(), "project already initialized") {
					return p.Error("project already initialized", err.Error(), nil)
				}
				return p.Error("initialization failed", err.Error(), nil)
			}

			for _, path := range created {
				p.Success("Created %s\n", path)
			}
			p.Info("\nNext steps:\n")
			p.Step("blockkit validate %s\n", scaffold.ExamplePayload)
			p.Step("blockkit template save example %s\n", scaffold.ExamplePayload)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to initialize")

	return cmd
}
