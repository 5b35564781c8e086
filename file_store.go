package todo

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
)

const (
	PendingFile   = "pending.todo"
	CompletedFile = "completed.todo"
	CounterFile   = "counter.todo"
)

// FileStore implements Store on three flat files in one directory.
// No caching and no locking - every call opens, reads or rewrites, and
// closes its file. Concurrent processes race; the last writer wins.
type FileStore struct {
	dir    string
	logger *log.Logger
}

// Option configures a FileStore
type Option func(*FileStore)

// WithLogger sets the logger used for storage activity
func WithLogger(logger *log.Logger) Option {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileStore creates a store rooted at dir.
// The directory is created lazily by the first operation.
func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{
		dir:    dir,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the storage directory
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file backing a collection
func (s *FileStore) Path(kind Kind) (string, error) {
	name, err := kind.fileName()
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// ReadCollection returns every task stored for kind, in stored order.
// A missing or empty file is an empty collection.
func (s *FileStore) ReadCollection(kind Kind) ([]Task, error) {
	path, err := s.Path(kind)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	err = s.withFile(path, func(file *os.File) error {
		data, err := readAll(file)
		if err != nil {
			return err
		}

		// Empty file
		if len(data) == 0 {
			tasks = []Task{}
			return nil
		}

		tasks, err = decodeTasks(data)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Printf("read %d %s tasks from %s", len(tasks), kind, path)
	return tasks, nil
}

// WriteCollection replaces the stored collection for kind with tasks
// Encode → Truncate → Write
func (s *FileStore) WriteCollection(kind Kind, tasks []Task) error {
	path, err := s.Path(kind)
	if err != nil {
		return err
	}

	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}

	err = s.withFile(path, func(file *os.File) error {
		if err := file.Truncate(0); err != nil {
			return fmt.Errorf("%w: failed to truncate %s: %w", ErrIO, path, err)
		}
		if _, err := file.WriteAt(data, 0); err != nil {
			return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Printf("wrote %d %s tasks to %s", len(tasks), kind, path)
	return nil
}

// NextID advances the counter file and returns the newly issued ID.
// The first ID issued by an empty store is 1.
func (s *FileStore) NextID() (uint64, error) {
	path := filepath.Join(s.dir, CounterFile)

	var next uint64
	err := s.withFile(path, func(file *os.File) error {
		data, err := readAll(file)
		if err != nil {
			return err
		}

		if len(data) == 0 {
			next = 1
		} else {
			last, err := decodeCounter(data)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", path, err)
			}
			if last == math.MaxUint64 {
				return fmt.Errorf("%w: %s holds %d", ErrCounterExhausted, path, last)
			}
			next = last + 1
		}

		// Fixed width, so overwriting from the start needs no truncate
		if _, err := file.WriteAt(encodeCounter(next), 0); err != nil {
			return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Printf("issued id %d", next)
	return next, nil
}

// withFile ensures the storage directory exists, opens path for read/write
// (creating it if absent) and runs fn on it
func (s *FileStore) withFile(path string, fn func(*os.File) error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create storage directory: %w", ErrIO, err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%w: failed to open file: %w", ErrIO, err)
	}

	fnErr := fn(file)
	if err := file.Close(); err != nil && fnErr == nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrIO, path, err)
	}
	return fnErr
}

// readAll reads the whole file from the start
func readAll(file *os.File) ([]byte, error) {
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat file: %w", ErrIO, err)
	}

	// Empty file
	if fileInfo.Size() == 0 {
		return nil, nil
	}

	data := make([]byte, fileInfo.Size())
	if _, err := file.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: failed to read file: %w", ErrIO, err)
	}
	return data, nil
}
