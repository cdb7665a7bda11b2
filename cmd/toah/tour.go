package main

import (
	"github.com/minaorangina/toah/engine"
	"github.com/minaorangina/toah/solver"
	"github.com/spf13/cobra"
)

func newTourCmd(a *app) *cobra.Command {
	tourCmd := &cobra.Command{
		Use:   "tour",
		Short: "Watch the computer move the tower to the last stool",
		Long:  `Solves the puzzle with the Frame–Stewart strategy on four stools, or the classic recursion on three.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newModel()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := engine.NewRenderer()

			opts := []solver.Option{}
			if a.cfg.Animate {
				opts = append(opts, engine.NewAnimator(out, renderer, a.cfg.Delay).Option(m))
			}

			a.logger.Debug("tour started", "stools", m.NumberOfStools(), "cheeses", m.NumberOfCheeses())
			if err := solver.Tour(m, opts...); err != nil {
				a.logger.Error("tour failed", "moves", m.NumberOfMoves(), "error", err)
				return err
			}
			a.logger.Info("tour finished", "moves", m.NumberOfMoves())

			if !a.cfg.Animate {
				engine.SendText(out, "%s\n", renderer.Render(m))
			}
			engine.SendText(out, "%d cheeses moved across %d stools in %d moves.\n",
				m.NumberOfCheeses(), m.NumberOfStools(), m.NumberOfMoves())

			printMoves, _ := cmd.Flags().GetBool("moves")
			if printMoves {
				engine.SendText(out, "%s\n", m.MoveSeq())
			}

			return nil
		},
	}

	tourCmd.Flags().BoolP("animate", "a", false, "Print the stools after every move (default from TOAH_ANIMATE)")
	tourCmd.Flags().Duration("delay", 0, "Pause between animated moves (default from TOAH_DELAY or 500ms)")
	tourCmd.Flags().Bool("moves", false, "Print the move sequence")

	return tourCmd
}
