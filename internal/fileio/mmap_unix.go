//go:build unix

package fileio

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File) (*Source, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return &Source{}, nil
	}
	if !fi.Mode().IsRegular() || int64(int(size)) != size {
		return readFile(f)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Source{data: data, unmap: func() error { return unix.Munmap(data) }}, nil
}
