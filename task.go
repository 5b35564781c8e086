package todo

import "fmt"

// Task represents a todo item
type Task struct {
	ID   uint64
	Name string
}

// Equal reports whether two tasks are the same task.
// Only the ID takes part in the comparison; names are not unique.
func (t Task) Equal(other Task) bool {
	return t.ID == other.ID
}

// Kind selects one of the two task collections
type Kind int

const (
	Pending Kind = iota
	Completed
)

func (k Kind) String() string {
	switch k {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// fileName returns the name of the file backing the collection
func (k Kind) fileName() (string, error) {
	switch k {
	case Pending:
		return PendingFile, nil
	case Completed:
		return CompletedFile, nil
	default:
		return "", fmt.Errorf("unknown collection %s", k)
	}
}

// indexOf returns the position of the task equal to target, or -1
func indexOf(tasks []Task, target Task) int {
	for i, t := range tasks {
		if t.Equal(target) {
			return i
		}
	}
	return -1
}
