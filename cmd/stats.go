package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show questions waiting for review per course",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(ctx, cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "COURSE\tTITLE\tTO REVIEW\tQUESTIONS")
		for _, info := range d.library.Courses() {
			c, _ := d.library.Catalog(info.ID)
			ids, err := d.mistakes.Load(ctx, info.ID)
			if err != nil {
				return fmt.Errorf("load mistakes for %s: %w", info.ID, err)
			}
			// Ids of questions no longer in the catalog are not counted.
			owned := len(c.QuestionsByID(ids.Bools()))
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", info.ID, info.Title, owned, len(c.Questions))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		stored, err := d.mistakes.Courses(ctx)
		if err != nil {
			return fmt.Errorf("list stored courses: %w", err)
		}
		for _, id := range stored {
			if _, ok := d.library.Catalog(id); !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "\nnote: stored mistakes for unknown course %q (run `quizdeck reset %s` to remove)\n", id, id)
			}
		}
		return nil
	},
}
