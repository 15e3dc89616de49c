//go:build !unix

package wordlist

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

// Open reads all of path into memory.
func Open(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	log.Debug().Str("path", path).Str("size", humanize.Bytes(uint64(len(data)))).Msg("read word file")
	return &Source{data: data}, nil
}
