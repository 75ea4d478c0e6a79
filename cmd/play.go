package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, builds the quiz machine, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	d, err := openDeps(ctx, cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	machine, err := quiz.New(ctx, d.library, d.mistakes, d.snapshots, d.log, quiz.Config{
		PersistReviewMisses: d.cfg.PersistReviewMisses,
	})
	if err != nil {
		return fmt.Errorf("start quiz: %w", err)
	}

	resumed, err := machine.Resume(ctx)
	if err != nil {
		d.log.Warn().Err(err).Msg("resume failed")
	} else if resumed {
		d.log.Info().Msg("resumed previous session")
	}

	return app.Run(ctx, machine, app.Options{
		AutoAdvance: d.cfg.AutoAdvance,
		Logger:      d.log,
	})
}
