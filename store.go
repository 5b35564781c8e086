package todo

// Store persists the pending and completed collections and the ID counter.
// Collections are always read and written whole.
type Store interface {
	ReadCollection(kind Kind) ([]Task, error)
	WriteCollection(kind Kind, tasks []Task) error
	NextID() (uint64, error)
}
