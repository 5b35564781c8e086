package todo

import "fmt"

// Test utilities - shared helpers for tests

// memStore is an in-memory Store that can be told to fail specific calls
type memStore struct {
	collections map[Kind][]Task
	counter     uint64

	// failWrite makes WriteCollection fail for that kind
	failWrite map[Kind]error
	// failRead makes ReadCollection fail for that kind
	failRead map[Kind]error
	failNext error

	writes []Kind
}

func newMemStore() *memStore {
	return &memStore{
		collections: make(map[Kind][]Task),
		failWrite:   make(map[Kind]error),
		failRead:    make(map[Kind]error),
	}
}

func (m *memStore) ReadCollection(kind Kind) ([]Task, error) {
	if err := m.failRead[kind]; err != nil {
		return nil, err
	}
	// Hand out a copy, callers are free to modify what they get
	return append([]Task{}, m.collections[kind]...), nil
}

func (m *memStore) WriteCollection(kind Kind, tasks []Task) error {
	if err := m.failWrite[kind]; err != nil {
		return err
	}
	m.writes = append(m.writes, kind)
	m.collections[kind] = append([]Task{}, tasks...)
	return nil
}

func (m *memStore) NextID() (uint64, error) {
	if m.failNext != nil {
		return 0, m.failNext
	}
	m.counter++
	return m.counter, nil
}

// ioFailure builds an error the way FileStore reports filesystem failures
func ioFailure(what string) error {
	return fmt.Errorf("%w: %s", ErrIO, what)
}
