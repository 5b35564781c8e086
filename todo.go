package todo

import (
	"fmt"
	"io"
	"log"
)

// Todo dispatches commands to a Store
type Todo struct {
	store  Store
	logger *log.Logger
}

// Result is what a command produces for display
type Result struct {
	Tasks []Task
}

// TodoOption configures a Todo
type TodoOption func(*Todo)

// WithTodoLogger sets the logger used for command outcomes
func WithTodoLogger(logger *log.Logger) TodoOption {
	return func(t *Todo) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Todo backed by store
func New(store Store, opts ...TodoOption) *Todo {
	t := &Todo{
		store:  store,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Handle runs a parsed command.
// Add and Done produce an empty Result; List produces the tasks to show.
func (t *Todo) Handle(cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case AddCommand:
		_, err := t.Add(c.Name)
		return Result{}, err
	case DoneCommand:
		_, err := t.Done(c.ID)
		return Result{}, err
	case ListCommand:
		tasks, err := t.List(c.Filter)
		if err != nil {
			return Result{}, err
		}
		return Result{Tasks: tasks}, nil
	default:
		return Result{}, fmt.Errorf("unknown command %T", cmd)
	}
}

// Add appends a new pending task and returns it.
// A name that cannot be stored is rejected before an ID is issued.
func (t *Todo) Add(name string) (Task, error) {
	if err := validateName(name); err != nil {
		return Task{}, err
	}

	pending, err := t.store.ReadCollection(Pending)
	if err != nil {
		return Task{}, err
	}

	id, err := t.store.NextID()
	if err != nil {
		return Task{}, err
	}

	task := Task{ID: id, Name: name}
	pending = append(pending, task)

	if err := t.store.WriteCollection(Pending, pending); err != nil {
		return Task{}, err
	}

	t.logger.Printf("added task %d %q", task.ID, task.Name)
	return task, nil
}

// Done moves the pending task with the given ID to the end of completed
// and returns it.
//
// The move is two separate rewrites, pending first. If writing completed
// fails the task is no longer pending and not yet completed.
func (t *Todo) Done(id uint64) (Task, error) {
	pending, err := t.store.ReadCollection(Pending)
	if err != nil {
		return Task{}, err
	}

	i := indexOf(pending, Task{ID: id})
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	task := pending[i]
	pending = append(pending[:i], pending[i+1:]...)

	if err := t.store.WriteCollection(Pending, pending); err != nil {
		return Task{}, err
	}

	completed, err := t.store.ReadCollection(Completed)
	if err != nil {
		return Task{}, fmt.Errorf("task %d removed from pending but not recorded as completed: %w", id, err)
	}
	completed = append(completed, task)

	if err := t.store.WriteCollection(Completed, completed); err != nil {
		return Task{}, fmt.Errorf("task %d removed from pending but not recorded as completed: %w", id, err)
	}

	t.logger.Printf("completed task %d %q", task.ID, task.Name)
	return task, nil
}

// List returns the tasks selected by filter.
// ListAll returns pending tasks followed by completed tasks.
func (t *Todo) List(filter ListFilter) ([]Task, error) {
	switch filter {
	case ListDefault, ListPending:
		return t.ListPending()
	case ListCompleted:
		return t.ListCompleted()
	case ListAll:
		return t.ListAll()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, string(filter))
	}
}

// ListPending returns the pending tasks
func (t *Todo) ListPending() ([]Task, error) {
	return t.store.ReadCollection(Pending)
}

// ListCompleted returns the completed tasks
func (t *Todo) ListCompleted() ([]Task, error) {
	return t.store.ReadCollection(Completed)
}

// ListAll returns pending tasks followed by completed tasks
func (t *Todo) ListAll() ([]Task, error) {
	pending, err := t.store.ReadCollection(Pending)
	if err != nil {
		return nil, err
	}

	completed, err := t.store.ReadCollection(Completed)
	if err != nil {
		return nil, err
	}

	all := make([]Task, 0, len(pending)+len(completed))
	all = append(all, pending...)
	return append(all, completed...), nil
}
