package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/play"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var answer string
	var rows int

	cmd := &cobra.Command{
		Use:     "render [guess...]",
		Short:   "Print the grid after the given guesses",
		Example: `  wordgrid render --answer crane slate ghost`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.setupConsoleLogging(); err != nil {
				return err
			}
			t, err := root.prepare()
			if err != nil {
				return err
			}
			out, err := play.Render(answer, args, rows, t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", root.cfg.Answer, "answer to score guesses against")
	cmd.Flags().IntVar(&rows, "rows", root.cfg.Rows, "guesses per game")
	return cmd
}
