package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/play"
	"github.com/robalobadob/wordgrid/internal/store"
)

func newPlayCmd(root *rootOptions) *cobra.Command {
	var answer string
	var rows int
	var daily bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.setupFileLogging(); err != nil {
				return err
			}
			t, err := root.prepare()
			if err != nil {
				return err
			}
			res, err := play.Run(play.Options{
				Store:  store.NewMemoryStore(),
				Theme:  t,
				Answer: answer,
				Rows:   rows,
				Daily:  daily,
				Salt:   root.cfg.DailySalt,
			})
			if err != nil {
				log.Error().Err(err).Msg("program exited")
				return err
			}
			log.Info().Str("gameId", res.GameID).Str("state", string(res.State)).Int("played", res.Played).Msg("session over")
			fmt.Fprintf(cmd.OutOrStdout(), "won %d of %d finished games\n", res.Won, res.Played)
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", root.cfg.Answer, "fixed answer (random when empty)")
	cmd.Flags().IntVar(&rows, "rows", root.cfg.Rows, "guesses per game")
	cmd.Flags().BoolVar(&daily, "daily", false, "play today's answer (ignored with --answer)")
	return cmd
}
