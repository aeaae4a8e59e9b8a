package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tlog/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show [YYYY-MM-DD]",
	Short: "Show entries and totals for a day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if len(args) == 1 {
		var err error
		day, err = time.ParseInLocation("2006-01-02", args[0], time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[0])
		}
	}

	tl, err := openLog()
	if err != nil {
		return err
	}

	for e := range tl.GetDay(day) {
		fmt.Println(e)
	}

	s := report.ForDay(tl.GetDay(day))
	if len(s.Lines) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w)
	for _, l := range s.Lines {
		fmt.Fprintf(w, "%s\t%s\n", l.Task, report.FormatDuration(l.Duration))
	}
	fmt.Fprintf(w, "\nwork\t%s\n", report.FormatDuration(s.Work))
	fmt.Fprintf(w, "slack\t%s\n", report.FormatDuration(s.Slack))
	return w.Flush()
}
