// Package fileio supplies whole-file byte ranges to the decoder and accepts
// encoded output. Inputs are memory-mapped where the platform allows it.
package fileio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Stdio is the path that selects stdin for Open and stdout for WriteFile.
const Stdio = "-"

const zstdExt = ".zst"

// Source is the contents of an opened input. Bytes is valid until Close.
type Source struct {
	data  []byte
	unmap func() error
}

// Bytes returns the file contents.
func (s *Source) Bytes() []byte { return s.data }

// Close releases the mapping, if any. It is safe to call more than once.
func (s *Source) Close() error {
	s.data = nil
	if s.unmap == nil {
		return nil
	}
	unmap := s.unmap
	s.unmap = nil
	return unmap()
}

// Open returns the contents of path. Paths ending in ".zst" are
// decompressed; Stdio reads standard input.
func Open(path string) (*Source, error) {
	var src *Source
	if path == Stdio {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		src = &Source{data: data}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, err = mapFile(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", path, err)
		}
	}

	if !strings.HasSuffix(path, zstdExt) {
		return src, nil
	}
	defer src.Close()
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	data, err := dec.DecodeAll(src.data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return &Source{data: data}, nil
}

// WriteFile writes data to path, or to stdout for "" and Stdio. Paths ending
// in ".zst" are zstd-compressed.
func WriteFile(path string, data []byte) error {
	if path == "" || path == Stdio {
		_, err := os.Stdout.Write(data)
		return err
	}
	if !strings.HasSuffix(path, zstdExt) {
		return os.WriteFile(path, data, 0644)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("compressing %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("compressing %s: %w", path, err)
	}
	return f.Close()
}
