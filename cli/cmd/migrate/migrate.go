package migrate

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/compozy/cfgmigrate/cli/helpers"
	"github.com/compozy/cfgmigrate/engine/migration"
	"github.com/compozy/cfgmigrate/pkg/config"
	"github.com/compozy/cfgmigrate/pkg/document"
	"github.com/compozy/cfgmigrate/pkg/logger"
	"github.com/compozy/cfgmigrate/pkg/watcher"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [file|-]",
		Short: "Migrate a configuration file to the current schema",
		Long: `Read a configuration document, rewrite every legacy option into its
current form and print the result. Reads stdin when no file or "-" is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: executeMigrateCommand,
	}

	cmd.Flags().BoolP("write", "w", false, "Rewrite the file in place instead of printing it")
	cmd.Flags().Bool("check", false, "Exit with a non-zero status when migration is needed; print nothing")
	cmd.Flags().Bool("watch", false, "Migrate again whenever the file changes")
	cmd.Flags().String("input-format", "", "Input format (json, jsonc, yaml, toml); detected from the file name by default")
	cmd.Flags().String("output-format", "", config.UsageWithEnv(
		"Output format (json, jsonc, yaml, toml); defaults to the input format", "output.format"))
	cmd.Flags().Int("indent", 2, config.UsageWithEnv("Indentation width of the output", "output.indent"))
	cmd.Flags().Int("max-passes", migration.DefaultMaxPasses,
		config.UsageWithEnv("Maximum migration passes before giving up", "migration.max_passes"))

	return cmd
}

// Options holds the parsed migrate flags.
type Options struct {
	Source      string
	Write       bool
	Check       bool
	Watch       bool
	InputFormat string
}

func parseOptions(cmd *cobra.Command, args []string) (*Options, error) {
	opts := &Options{}
	if len(args) > 0 {
		opts.Source = args[0]
	}
	var err error
	if opts.Write, err = cmd.Flags().GetBool("write"); err != nil {
		return nil, fmt.Errorf("failed to get write flag: %w", err)
	}
	if opts.Check, err = cmd.Flags().GetBool("check"); err != nil {
		return nil, fmt.Errorf("failed to get check flag: %w", err)
	}
	if opts.Watch, err = cmd.Flags().GetBool("watch"); err != nil {
		return nil, fmt.Errorf("failed to get watch flag: %w", err)
	}
	if opts.InputFormat, err = cmd.Flags().GetString("input-format"); err != nil {
		return nil, fmt.Errorf("failed to get input-format flag: %w", err)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) validate() error {
	stdin := helpers.IsStdin(o.Source)
	switch {
	case o.Write && o.Check:
		return helpers.NewUsageError("--write and --check cannot be combined")
	case o.Write && stdin:
		return helpers.NewUsageError("--write needs a file argument")
	case o.Watch && stdin:
		return helpers.NewUsageError("--watch needs a file argument")
	case o.Watch && o.Check:
		return helpers.NewUsageError("--watch and --check cannot be combined")
	}
	return nil
}

func executeMigrateCommand(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions(cmd, args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	r := newRunner(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := r.Run(ctx); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Watch(ctx)
}

// Runner migrates one document according to Options.
type Runner struct {
	opts     *Options
	settings *config.Config
	migrator *migration.Migrator
	log      logger.Logger
	stdin    io.Reader
	stdout   io.Writer
	mu       sync.Mutex
}

func newRunner(ctx context.Context, opts *Options, stdin io.Reader, stdout io.Writer) *Runner {
	settings := config.FromContext(ctx)
	log := logger.FromContext(ctx)
	migratorOpts := append(settings.MigratorOptions(), migration.WithLogger(log))
	return &Runner{
		opts:     opts,
		settings: settings,
		migrator: migration.New(migratorOpts...),
		log:      log,
		stdin:    stdin,
		stdout:   stdout,
	}
}

// Run reads, migrates and emits the document once.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inFormat, err := r.inputFormat()
	if err != nil {
		return err
	}
	outFormat := inFormat
	if r.settings.Output.Format != "" {
		if outFormat, err = document.ParseFormat(r.settings.Output.Format); err != nil {
			return err
		}
	}
	if r.opts.Write && !writableAs(inFormat, outFormat) {
		return helpers.NewUsageError(fmt.Sprintf("--write cannot store %s output in the %s file %s", outFormat, inFormat, r.name()))
	}

	data, err := helpers.ReadInput(ctx, r.stdin, r.opts.Source)
	if err != nil {
		return err
	}
	doc, err := document.Decode(data, inFormat)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", r.name(), err)
	}
	res, err := r.migrator.Migrate(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to migrate %s: %w", r.name(), err)
	}
	if res.Changed {
		r.log.Info("Config migrated", "file", r.name(), "passes", res.Passes)
	} else {
		r.log.Info("Config already up to date", "file", r.name())
	}

	if r.opts.Check {
		if res.Changed {
			return helpers.ErrMigrationNeeded
		}
		return nil
	}
	out, err := document.Encode(res.Config, outFormat, r.settings.Output.Indent)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", r.name(), err)
	}
	if r.opts.Write {
		if !res.Changed && outFormat == inFormat {
			return nil
		}
		return helpers.WriteFile(r.opts.Source, out)
	}
	if _, err := r.stdout.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Watch re-runs the migration whenever the source file changes, until ctx
// is done.
func (r *Runner) Watch(ctx context.Context) error {
	w, err := watcher.New(watcher.WithLogger(r.log))
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			r.log.Warn("Failed to close watcher", "error", err)
		}
	}()
	w.OnChange(func(string) {
		if err := r.Run(ctx); err != nil {
			r.log.Error("Migration failed", "file", r.name(), "error", err)
		}
	})
	if err := w.Watch(ctx, r.opts.Source); err != nil {
		return err
	}
	r.log.Info("Watching for changes", "file", r.name())
	<-ctx.Done()
	return nil
}

func (r *Runner) inputFormat() (document.Format, error) {
	if r.opts.InputFormat != "" {
		return document.ParseFormat(r.opts.InputFormat)
	}
	if helpers.IsStdin(r.opts.Source) {
		return document.FormatJSON, nil
	}
	return document.FormatFromPath(r.opts.Source)
}

// writableAs reports whether a document encoded as out can be decoded again
// as in. Plain JSON is valid JSONC.
func writableAs(in, out document.Format) bool {
	return in == out || (in == document.FormatJSONC && out == document.FormatJSON)
}

func (r *Runner) name() string {
	if helpers.IsStdin(r.opts.Source) {
		return "stdin"
	}
	return r.opts.Source
}
