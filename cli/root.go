package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/compozy/cfgmigrate/cli/cmd/migrate"
	"github.com/compozy/cfgmigrate/pkg/config"
	"github.com/compozy/cfgmigrate/pkg/logger"
	"github.com/compozy/cfgmigrate/pkg/version"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cfgmigrate",
		Short:         "Upgrade configuration files to the current schema",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupContext(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a cfgmigrate settings file (YAML)")
	flags.String("log-level", "info", config.UsageWithEnv("Log level (debug, info, warn, error, disabled)", "log.level"))
	flags.Bool("log-json", false, config.UsageWithEnv("Emit logs as JSON", "log.json"))
	flags.Bool("log-source", false, "Include the caller in log records")

	root.AddCommand(
		migrate.NewMigrateCommand(),
	)

	return root
}

// setupContext loads settings, installs the logger and attaches both to the
// command context.
func setupContext(cmd *cobra.Command) error {
	ctx := cmd.Context()
	settingsFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	sources := make([]config.Source, 0, 2)
	if settingsFile != "" {
		sources = append(sources, config.NewYAMLProvider(settingsFile))
	}
	sources = append(sources, config.NewCLIProvider(changedFlags(cmd.Flags())))

	svc := config.NewService()
	cfg, err := svc.Load(ctx, sources...)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	logSource, err := cmd.Flags().GetBool("log-source")
	if err != nil {
		return fmt.Errorf("failed to get log-source flag: %w", err)
	}
	log := logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON, logSource, cmd.ErrOrStderr())
	log.Debug("Settings loaded",
		"max_passes", cfg.Migration.MaxPasses,
		"max_passes_source", svc.GetSource("migration.max_passes"),
		"output_format", cfg.Output.Format,
		"output_format_source", svc.GetSource("output.format"),
	)

	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)
	return nil
}

// changedFlags returns the flags set explicitly on the command line so they
// override every other settings source, and only those.
func changedFlags(flags *pflag.FlagSet) map[string]any {
	out := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		out[f.Name] = f.Value.String()
	})
	return out
}
