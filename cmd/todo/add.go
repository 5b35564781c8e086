package main

import (
	"github.com/fmizzell/todo"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a todo",
	Long:  `Add a new pending todo. It is given the next ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  addTask,
}

func addTask(cmd *cobra.Command, args []string) error {
	return runCommand(cmd, todo.AddCommand{Name: args[0]})
}
