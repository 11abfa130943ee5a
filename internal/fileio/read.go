package fileio

import (
	"io"
	"os"
)

func readFile(f *os.File) (*Source, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &Source{data: data}, nil
}
