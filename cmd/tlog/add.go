package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <task>",
	Short: "Append an entry stamped with the current time",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	tl, err := openLog()
	if err != nil {
		return err
	}

	task := strings.Join(args, " ")
	tl.Add(task)
	if err := tl.Save(); err != nil {
		return err
	}

	fmt.Printf("logged: %s\n", task)
	return nil
}
