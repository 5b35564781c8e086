package todo

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes tasks as an ID/Name table in the given order.
// Nothing is written for an empty list, not even the header.
func Render(w io.Writer, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%d\t%s\n", task.ID, displayName(task.Name))
	}
	return tw.Flush()
}

// displayName keeps a task on one row
func displayName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	return strings.ReplaceAll(name, "\t", " ")
}
