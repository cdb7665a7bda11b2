package main

import (
	"github.com/minaorangina/toah/engine"
	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Solve the puzzle yourself from the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newModel()
			if err != nil {
				return err
			}

			console, err := engine.NewConsole(engine.ConsoleOpts{
				Model:    m,
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
				Renderer: engine.NewRenderer(),
				Logger:   a.logger,
			})
			if err != nil {
				return err
			}

			return console.Play()
		},
	}
}
