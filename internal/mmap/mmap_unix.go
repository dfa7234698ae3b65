//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}

	// advisory only
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return data, unix.Munmap, nil
}

// Guarded returns an n byte writable slice whose last byte is immediately
// followed by an inaccessible page, so reading past its end faults. free
// releases the memory.
func Guarded(n int) (data []byte, free func() error, err error) {
	page := unix.Getpagesize()
	pages := (n+page-1)/page + 1

	mem, err := unix.Mmap(-1, 0, pages*page, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}

	guard := (pages - 1) * page
	if err := unix.Mprotect(mem[guard:], unix.PROT_NONE); err != nil {
		_ = unix.Munmap(mem)
		return nil, nil, err
	}

	return mem[guard-n : guard : guard], func() error { return unix.Munmap(mem) }, nil
}
