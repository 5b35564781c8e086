package main

import (
	"fmt"
	"strconv"

	"github.com/fmizzell/todo"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark todo as done",
	Long:  `Move the pending todo with the given ID to the completed list.`,
	Args:  cobra.ExactArgs(1),
	RunE:  completeTask,
}

func completeTask(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid todo ID %q: must be a non-negative integer", args[0])
	}
	return runCommand(cmd, todo.DoneCommand{ID: id})
}
