package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dyluth/blockkit/internal/config"
	"github.com/dyluth/blockkit/internal/printer"
	"github.com/dyluth/blockkit/pkg/store"
	"github.com/spf13/cobra"
)

var versionString = "dev"

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	configPath string
	namespace  string
}

// NewRootCmd returns a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "blockkit",
		Short: "Build, validate and store Slack Block Kit payloads",
		Long: `blockkit checks Block Kit message payloads against the block and element
rules Slack enforces, renders them to canonical JSON, and keeps named,
versioned templates in Redis.

Payload files may be JSON or YAML. Use "-" to read from stdin.`,
		Version: versionString,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		// We print formatted colored errors directly in the printer package
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&opts.namespace, "namespace", "", "Template namespace (overrides config and "+config.EnvNamespace+")")

	rootCmd.AddCommand(
		newValidateCmd(opts),
		newRenderCmd(opts),
		newExampleCmd(),
		newInitCmd(),
		newTemplateCmd(opts),
	)

	return rootCmd
}

// loadConfig resolves configuration. An explicit --config must exist.
func (o *globalOptions) loadConfig(p *printer.Printer) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultPath)
	}
	if err != nil {
		path := o.configPath
		if path == "" {
			path = config.DefaultPath
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, p.Error(
				"config file not found",
				fmt.Sprintf("No config file at %s.", path),
				[]string{"Omit --config to use defaults, or create the file."},
			)
		}
		return nil, p.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"File": path},
			nil,
		)
	}

	if o.namespace != "" {
		cfg.Namespace = o.namespace
	}
	return cfg, nil
}

// openStore connects to the configured template store and verifies connectivity.
func (o *globalOptions) openStore(ctx context.Context, p *printer.Printer) (*store.Client, *config.Config, error) {
	cfg, err := o.loadConfig(p)
	if err != nil {
		return nil, nil, err
	}

	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client, err := store.NewClient(redisOpts, cfg.Namespace)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create store client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, nil, p.ErrorWithContext(
			"Redis connection failed",
			fmt.Sprintf("Could not connect to Redis at %s", cfg.Redis.URL),
			map[string]string{"Namespace": cfg.Namespace},
			[]string{
				fmt.Sprintf("Point %s at a running Redis:\n  export %s=redis://host:6379/0", config.EnvRedisURL, config.EnvRedisURL),
				"Set redis.url in " + config.DefaultPath,
			},
		)
	}

	return client, cfg, nil
}

func newPrinter(cmd *cobra.Command) *printer.Printer {
	return printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}
