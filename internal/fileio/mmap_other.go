//go:build !unix

package fileio

import "os"

func mapFile(f *os.File) (*Source, error) {
	return readFile(f)
}
