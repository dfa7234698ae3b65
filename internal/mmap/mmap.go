// Package mmap maps files read-only so they can be hashed without copying.
// Platforms without mmap fall back to reading the whole file.
package mmap

import (
	"errors"
	"os"
)

// ErrUnsupported is returned by Guarded on platforms without mprotect.
var ErrUnsupported = errors.New("mmap: unsupported on this platform")

// File is a read-only view of a file's contents.
type File struct {
	data  []byte
	unmap func([]byte) error
}

// Open maps the file at path. Empty files are not mapped.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &File{}, nil
	}
	if size < 0 || int64(int(size)) != size {
		return nil, errors.New("mmap: invalid file size")
	}

	data, unmap, err := osMap(f, int(size))
	if err != nil {
		return nil, err
	}
	return &File{data: data, unmap: unmap}, nil
}

// Bytes returns the contents. The slice is invalid after Close.
func (m *File) Bytes() []byte {
	return m.data
}

// Close releases the mapping. It is safe to call more than once.
func (m *File) Close() error {
	if m == nil || m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if m.unmap == nil {
		return nil
	}
	return m.unmap(data)
}
