package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/dateselect/internal/app"
	"github.com/bft-labs/dateselect/internal/cliconfig"
	"github.com/bft-labs/dateselect/internal/watch"
	"github.com/bft-labs/dateselect/pkg/log"
)

const longHelp = `Drive a date selection model from the command line.

The model holds either a single date or a begin/end range, validates every
assignment, and prints one line each time the selection changes.

Operations:
  2024-01-05              select a date (single mode)
  today                   select the current day; also usable as a range endpoint
  2024-01-01..2024-01-05  select a range (range mode)
  ..                      select an empty range
  none                    select nothing
  clear                   clear the selection (always reported)`

var exampleUsage = strings.TrimSpace(`
  dateselect apply 2024-01-05 2024-01-06 clear
  dateselect --mode range apply 2024-01-01..2024-01-05
  dateselect --mode range --calendar calendar watch ./selection.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// newRootCommand builds the CLI. Configuration is loaded before each
// subcommand runs; logger is re-leveled from the loaded configuration.
func newRootCommand(logger *zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	// loadConfig applies file < env < flag precedence and validates the result.
	loadConfig := func(cmd *cobra.Command) error {
		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}

		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		*logger = logger.Level(cfg.Level())
		logger.Debug().Interface("config", cfg).Msg("configuration")
		return nil
	}

	root := &cobra.Command{
		Use:           "dateselect",
		Short:         "Drive a date selection model from the command line",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	apply := &cobra.Command{
		Use:   "apply [operation...]",
		Short: "Apply operations in order and print each change",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.NewRunner(cfg, cmd.OutOrStdout(), log.NewZerologAdapterWithLogger(*logger))
			if err != nil {
				return err
			}
			defer r.Close()

			err = r.ApplyAll(args)
			fmt.Fprintf(cmd.OutOrStdout(), "selected %s\n", r.Current())
			return err
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch <selection-file>",
		Short: "Apply a TOML selection file every time it is written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wcfg := watch.Config{Path: args[0], DebounceDelay: cfg.Debounce}
			if err := wcfg.Validate(); err != nil {
				return err
			}

			adapter := log.NewZerologAdapterWithLogger(*logger)
			r, err := app.NewRunner(cfg, cmd.OutOrStdout(), adapter)
			if err != nil {
				return err
			}
			defer r.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info().Str("path", wcfg.Path).Str("mode", cfg.Mode).Msg("watching selection file")
			if err := watch.New(wcfg, r, adapter).Run(ctx); err != nil {
				return err
			}
			logger.Info().Str("selected", r.Current()).Msg("received signal, stopping")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.dateselect/config.toml)")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "selection mode: single or range")
	flags.StringVar(&cfg.Calendar, "calendar", cfg.Calendar, "date representation: native (time.Time) or calendar (civil dates)")
	flags.StringVar(&cfg.Date, "date", "", "initial date in single mode (YYYY-MM-DD)")
	flags.StringVar(&cfg.Begin, "begin", "", "initial range begin in range mode (YYYY-MM-DD)")
	flags.StringVar(&cfg.End, "end", "", "initial range end in range mode (YYYY-MM-DD)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, fmt.Sprintf("log level (%s)", strings.Join(levels(), ", ")))
	flags.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after a file change before applying it")

	root.AddCommand(apply, watchCmd)
	return root
}

func levels() []string {
	names := make([]string, 0, 5)
	for _, l := range []zerolog.Level{zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel, zerolog.Disabled} {
		names = append(names, l.String())
	}
	return names
}
