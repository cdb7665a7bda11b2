package main

import (
	"github.com/minaorangina/toah/engine"
	"github.com/minaorangina/toah/protocol"
	"github.com/spf13/cobra"
)

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [moves...]",
		Short: "Rebuild a game from its moves",
		Long: `Fills the first stool and applies each move, written origin-destination (e.g. 0-3),
then prints the resulting stools. Stops at the first illegal move.`,
		Example: "  toah replay -s 4 -c 3 0-2 0-1 2-1 0-3",
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := protocol.ParseMoves(args)
			if err != nil {
				return err
			}

			m, err := moves.GenerateModel(a.cfg.Stools, a.cfg.Cheeses)
			if err != nil {
				a.logger.Debug("replay failed", "moves", moves.Length(), "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			engine.SendText(out, "%s\n", engine.NewRenderer().Render(m))
			engine.SendText(out, "%d moves replayed.", m.NumberOfMoves())
			if m.Solved() {
				engine.SendText(out, " Solved!")
			}
			engine.SendText(out, "\n")

			return nil
		},
	}
}
