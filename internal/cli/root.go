/*
PURPOSE:
  Defines the root Cobra command for the console-kit CLI.
  Handles global flags and builds the shared output stack for subcommands.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface that demonstrates the library.
  - Support global flags like --config.

  Implementation-discovered:
  - Every subcommand needs the same palette, logger and recorder, so
    they are built once in PersistentPreRunE.
  - The recorder must be closed after the subcommand finishes, even on
    error, so Execute tears down rather than a post-run hook.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/console-kit/main.go
  - Calls: Child commands (log, levels, stamp, spin)
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Flags override config values only when set.

RELATED FILES:
  - cmd/console-kit/main.go
  - internal/config/config.go
*/

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/console-kit/entry"
	"github.com/daryltucker/console-kit/internal/config"
	"github.com/daryltucker/console-kit/internal/output"
	"github.com/daryltucker/console-kit/logger"
	"github.com/daryltucker/console-kit/paint"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile      string
	recordFile   string
	colorMode    string
	verbose      bool
	outputFlag   string
	datetimeFlag bool

	rootCmd = &cobra.Command{
		Use:           "console-kit",
		Short:         "Leveled log lines, spinners and boxed messages for the terminal",
		Long:          `A demo front end for the console-kit library. Each subcommand exercises one component.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}
)

// app holds what subcommands share once setup has run.
var app struct {
	cfg      *config.Config
	palette  *paint.Palette
	logger   *logger.Logger
	recorder output.RecordCloser
}

// Execute executes the root command.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := teardown(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./console-kit.yaml)")
	rootCmd.PersistentFlags().StringVar(&recordFile, "record", "", "record emitted lines to a .jsonl or .csv file")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "color mode: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&outputFlag, "output", "", "logger sink: log (line buffered) or stdout (raw)")
	rootCmd.PersistentFlags().BoolVar(&datetimeFlag, "datetime", false, "prefix log lines with a timestamp")
}

func setup(cmd *cobra.Command) error {
	output.SetLogger(output.NewLogger(os.Stderr, verbose, false))

	// 1. Load Config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// 2. Overrides
	flags := cmd.Flags()
	if flags.Changed("record") {
		cfg.Record = recordFile
	}
	if flags.Changed("color") {
		cfg.Color = colorMode
	}
	if flags.Changed("output") {
		cfg.Output = outputFlag
	}
	if flags.Changed("datetime") {
		cfg.Datetime = datetimeFlag
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	output.Logger.Debug("configuration ready", "config", cfgFile, "output", cfg.Output, "color", cfg.Color)

	// 3. Shared output stack
	sink, err := entry.ParseOutput(cfg.Output)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.palette = newPalette(cfg.Color)

	opts := []logger.Option{
		logger.WithOutput(sink),
		logger.WithDatetime(cfg.Datetime),
		logger.WithPalette(app.palette),
		logger.WithWriter(cmd.OutOrStdout()),
	}
	if cfg.Record != "" {
		rec, err := output.NewRecorder(cfg.Record)
		if err != nil {
			return err
		}
		app.recorder = rec
		opts = append(opts, logger.WithRecorder(rec))
		output.Logger.Debug("recording lines", "path", cfg.Record)
	}
	app.logger = logger.New(opts...)

	return nil
}

func teardown() error {
	if app.recorder == nil {
		return nil
	}
	err := app.recorder.Close()
	app.recorder = nil
	return err
}

func newPalette(mode string) *paint.Palette {
	switch mode {
	case "always":
		return paint.New(true)
	case "never":
		return paint.New(false)
	default:
		return paint.Auto(os.Stdout.Fd())
	}
}
