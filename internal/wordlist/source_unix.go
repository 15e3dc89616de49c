//go:build unix

package wordlist

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// Open maps path into memory read-only.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	size := fi.Size()
	log.Debug().Str("path", path).Str("size", humanize.Bytes(uint64(size))).Msg("mapping word file")
	if size == 0 {
		// mmap refuses zero length mappings.
		return &Source{}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &Source{
		data:  data,
		unmap: func() error { return unix.Munmap(data) },
	}, nil
}
