package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [course]",
	Short: "Clear recorded mistakes and the saved session",
	Long: `Clear the recorded mistakes for one course, or for every course when no
course is given. The saved in-progress session is always discarded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(ctx, cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		var courses []string
		if len(args) == 1 {
			courses = args
		} else {
			courses, err = d.mistakes.Courses(ctx)
			if err != nil {
				return fmt.Errorf("list stored courses: %w", err)
			}
		}

		for _, id := range courses {
			if err := d.mistakes.Clear(ctx, id); err != nil {
				return fmt.Errorf("clear mistakes for %s: %w", id, err)
			}
			d.log.Info().Str("course", id).Msg("mistakes cleared")
		}
		if err := d.snapshots.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d course(s).\n", len(courses))
		return nil
	},
}
