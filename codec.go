package todo

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Wire format, all integers little-endian:
//
//	tasks:   u64 count, then per task: u64 id, u64 len(name), name bytes
//	counter: u64
//
// This matches bincode's default encoding of a sequence of {u64, String},
// so files written by earlier versions of the tool decode unchanged.

const (
	u64Size = 8

	// counterSize is the exact size of the counter file
	counterSize = u64Size
)

// encodeTasks serializes a task sequence
func encodeTasks(tasks []Task) ([]byte, error) {
	size := u64Size
	for _, t := range tasks {
		size += 2*u64Size + len(t.Name)
	}

	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(tasks)))
	for _, t := range tasks {
		if err := validateName(t.Name); err != nil {
			return nil, fmt.Errorf("task %d: %w", t.ID, err)
		}
		buf = binary.LittleEndian.AppendUint64(buf, t.ID)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(t.Name)))
		buf = append(buf, t.Name...)
	}

	return buf, nil
}

// decodeTasks deserializes a task sequence written by encodeTasks.
// Every accepted input re-encodes to exactly the same bytes.
func decodeTasks(data []byte) ([]Task, error) {
	d := decoder{data: data}

	count, err := d.readUint64("task count")
	if err != nil {
		return nil, err
	}

	// Each task needs at least 16 bytes; reject counts the input cannot hold
	// before allocating.
	if count > uint64(d.remaining())/(2*u64Size) {
		return nil, fmt.Errorf("%w: task count %d exceeds data length %d", ErrDataCorruption, count, len(data))
	}

	tasks := make([]Task, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := d.readUint64("task id")
		if err != nil {
			return nil, err
		}
		name, err := d.readString("task name")
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, Task{ID: id, Name: name})
	}

	if d.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d tasks", ErrDataCorruption, d.remaining(), count)
	}

	return tasks, nil
}

// validateName reports whether name can be stored
func validateName(name string) error {
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: name is not valid UTF-8", ErrSerialization)
	}
	return nil
}

// encodeCounter serializes the last issued ID
func encodeCounter(n uint64) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, counterSize), n)
}

// decodeCounter deserializes the counter file contents
func decodeCounter(data []byte) (uint64, error) {
	if len(data) != counterSize {
		return 0, fmt.Errorf("%w: counter is %d bytes, want %d", ErrDataCorruption, len(data), counterSize)
	}
	return binary.LittleEndian.Uint64(data), nil
}

// decoder walks a byte slice, reporting short reads as corruption
type decoder struct {
	data []byte
	off  int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.off
}

func (d *decoder) readUint64(field string) (uint64, error) {
	if d.remaining() < u64Size {
		return 0, fmt.Errorf("%w: truncated %s at offset %d", ErrDataCorruption, field, d.off)
	}
	v := binary.LittleEndian.Uint64(d.data[d.off:])
	d.off += u64Size
	return v, nil
}

func (d *decoder) readString(field string) (string, error) {
	n, err := d.readUint64(field + " length")
	if err != nil {
		return "", err
	}
	if n > uint64(d.remaining()) {
		return "", fmt.Errorf("%w: %s length %d exceeds remaining %d bytes", ErrDataCorruption, field, n, d.remaining())
	}

	b := d.data[d.off : d.off+int(n)]
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s at offset %d is not valid UTF-8", ErrDataCorruption, field, d.off)
	}
	d.off += int(n)
	return string(b), nil
}
