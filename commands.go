package todo

import (
	"fmt"
	"strings"
)

// Command is a parsed user request, one of AddCommand, DoneCommand or
// ListCommand
type Command interface {
	Type() string
}

// AddCommand creates a pending task
type AddCommand struct {
	Name string
}

func (c AddCommand) Type() string { return "add" }

// DoneCommand moves a pending task to completed
type DoneCommand struct {
	ID uint64
}

func (c DoneCommand) Type() string { return "done" }

// ListCommand shows one or both collections
type ListCommand struct {
	Filter ListFilter
}

func (c ListCommand) Type() string { return "list" }

// ListFilter selects what ListCommand shows.
// The zero value lists pending tasks.
type ListFilter string

const (
	ListDefault   ListFilter = ""
	ListPending   ListFilter = "pending"
	ListCompleted ListFilter = "completed"
	ListAll       ListFilter = "all"
)

// ListFilters are the filter names accepted on the command line
var ListFilters = []string{string(ListPending), string(ListCompleted), string(ListAll)}

// ParseListFilter converts user input into a ListFilter
func ParseListFilter(s string) (ListFilter, error) {
	switch f := ListFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case ListDefault, ListPending, ListCompleted, ListAll:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (use %s)", ErrInvalidFilter, s, strings.Join(ListFilters, ", "))
	}
}
