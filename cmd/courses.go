package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the available courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tQUESTIONS\tDESCRIPTIVE\tEXAM")
		for _, info := range d.library.Courses() {
			c, _ := d.library.Catalog(info.ID)
			exam := info.ExamDate
			if info.ExamTime != "" {
				exam += " " + info.ExamTime
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				info.ID, info.Title, len(c.Questions), len(c.Descriptive), exam)
		}
		return w.Flush()
	},
}
