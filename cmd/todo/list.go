package main

import (
	"github.com/fmizzell/todo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:       "list [pending|completed|all]",
	Short:     "List todos",
	Long:      `List pending todos, completed todos, or all of them (pending first). Defaults to pending.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: todo.ListFilters,
	RunE:      listTasks,
}

func listTasks(cmd *cobra.Command, args []string) error {
	var filter todo.ListFilter
	if len(args) == 1 {
		var err error
		filter, err = todo.ParseListFilter(args[0])
		if err != nil {
			return err
		}
	}
	return runCommand(cmd, todo.ListCommand{Filter: filter})
}
