package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/config"
	"github.com/robalobadob/wordgrid/internal/theme"
	"github.com/robalobadob/wordgrid/internal/words"
)

// rootOptions are shared by every subcommand. Flags override the environment.
type rootOptions struct {
	cfg       config.Config
	logLevel  string
	logFile   string
	themeFile string
	closeLog  func() error
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Load()}

	cmd := &cobra.Command{
		Use:          "wordgrid",
		Short:        "Play a word-guessing game in the terminal",
		SilenceUsage: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.closeLog != nil {
				return opts.closeLog()
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.cfg.LogLevel, "zerolog level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", opts.cfg.LogFile, "file to write logs to")
	cmd.PersistentFlags().StringVar(&opts.themeFile, "theme", opts.cfg.ThemeFile, "TOML theme file")

	cmd.AddCommand(newPlayCmd(opts), newRenderCmd(opts))
	return cmd
}

// setupLogging points the global zerolog logger at w.
func setupLogging(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// setupFileLogging is used by interactive commands, which own the terminal.
func (o *rootOptions) setupFileLogging() error {
	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	o.closeLog = f.Close
	return setupLogging(o.logLevel, f)
}

func (o *rootOptions) setupConsoleLogging() error {
	return setupLogging(o.logLevel, zerolog.ConsoleWriter{Out: os.Stderr})
}

// prepare loads word lists and the theme after logging is configured.
func (o *rootOptions) prepare() (theme.Theme, error) {
	if err := words.Init(); err != nil {
		return theme.Theme{}, fmt.Errorf("load word lists: %w", err)
	}
	a, g := words.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	return theme.Load(o.themeFile)
}
