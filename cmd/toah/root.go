package main

import (
	"log/slog"

	"github.com/minaorangina/toah/config"
	"github.com/minaorangina/toah/game"
	"github.com/minaorangina/toah/internal/logging"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags and environment are read
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "toah",
		Short: "The Towers of Anne Hoy puzzle",
		Long: `Move a tower of cheese from the first stool to the last, one cheese at a time,
never putting a cheese on a smaller one. Play it yourself or watch the four-stool tour.

Defaults come from TOAH_CHEESES, TOAH_STOOLS, TOAH_DELAY, TOAH_ANIMATE and TOAH_LOG_LEVEL.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().IntP("cheeses", "c", 0, "Number of cheeses on the first stool (default from TOAH_CHEESES or 5)")
	rootCmd.PersistentFlags().IntP("stools", "s", 0, "Number of stools (default from TOAH_STOOLS or 4)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newPlayCmd(a),
		newTourCmd(a),
		newReplayCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("cheeses") {
		cfg.Cheeses, _ = flags.GetInt("cheeses")
	}
	if flags.Changed("stools") {
		cfg.Stools, _ = flags.GetInt("stools")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Lookup("delay") != nil && flags.Changed("delay") {
		cfg.Delay, _ = flags.GetDuration("delay")
	}
	if flags.Lookup("animate") != nil && flags.Changed("animate") {
		cfg.Animate, _ = flags.GetBool("animate")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

// newModel builds a model in the starting configuration
func (a *app) newModel() (*game.Model, error) {
	m, err := game.NewModel(a.cfg.Stools)
	if err != nil {
		return nil, err
	}
	m.FillFirstStool(a.cfg.Cheeses)
	return m, nil
}
