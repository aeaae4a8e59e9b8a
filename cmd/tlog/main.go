package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tlog/internal/complete"
	"tlog/internal/config"
	"tlog/internal/timelog"
	"tlog/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tlog",
	Short: "tlog - personal time tracking log",
	Long: `tlog keeps an append-only, human-readable log of what you worked on.

Running it without a subcommand opens the interactive prompt: it shows
today's entries and totals, and logs a new entry each time you press enter.
Tab completes task names from your history, one segment at a time
("project:" first, then "-- detail").`,
	SilenceUsage: true,
	RunE:         runPrompt,
}

var (
	logFile    string
	configFile string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&logFile, "file", "f", "", "timelog file (default ~/.gtimelog/timelog.txt)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.gtimelog/tlogrc.yaml)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
}

// openLog resolves the log path (flag, then config, then default) and loads
// it. A missing file starts a new log at that path.
func openLog() (*timelog.Timelog, error) {
	path := logFile
	if path == "" {
		cfgPath := configFile
		if cfgPath == "" {
			var err error
			cfgPath, err = config.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		path = cfg.LogFile
	}
	return timelog.FromFile(path)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	tl, err := openLog()
	if err != nil {
		return err
	}
	return tui.New(tl, complete.FromTimelog(tl)).Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
