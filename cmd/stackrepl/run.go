package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/stackrepl/config"
	"github.com/timewinder-dev/stackrepl/repl"
	"github.com/timewinder-dev/stackrepl/signals"
)

var (
	configPath   string
	promptFlag   string
	historyLimit int
	noColorFlag  bool
	plainFlag    bool
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "Read settings from a TOML file")
	cmd.Flags().StringVar(&promptFlag, "prompt", config.DefaultPrompt, "Prompt shown before each command")
	cmd.Flags().IntVar(&historyLimit, "history-limit", config.DefaultHistoryLimit, "Number of lines kept for arrow-key recall (0 disables)")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "Read plain lines even when stdin is a terminal")
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = promptFlag
	}
	if flags.Changed("history-limit") {
		cfg.HistoryLimit = historyLimit
	}
	if noColorFlag {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runCommand(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't load config")
	}

	monitor := signals.NewMonitor()
	if err := monitor.Install(); err != nil {
		log.Fatal().Err(err).Msg("Couldn't install interrupt handler")
	}
	defer monitor.Stop()

	var reader repl.LineReader
	if plainFlag || !isTerminal(os.Stdin) {
		reader = repl.NewLineScanner(os.Stdin, os.Stdout).CancelOn(monitor.Done())
	} else {
		editor, err := repl.NewEditor(repl.EditorOptions{
			HistoryLimit: cfg.HistoryLimit,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't start line editor")
		}
		defer editor.Close()
		// Unblock a pending read when an interrupt arrives.
		monitor.OnShutdown(func() { editor.Close() })
		reader = editor
	}

	useColor := cfg.Color && isTerminal(os.Stdout)
	reporter := repl.NewReporter(os.Stdout, os.Stderr, useColor)
	log.Debug().Str("prompt", cfg.Prompt).Int("history_limit", cfg.HistoryLimit).Bool("color", useColor).Msg("starting")

	engine := repl.NewEngine(reader, monitor, reporter, cfg.Prompt)
	if err := engine.Run(); err != nil {
		log.Debug().Err(err).Msg("session ended on read error")
	}
}
