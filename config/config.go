package config

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/namsral/flag"

	"github.com/domino14/wordcliques/internal/search"
)

type Config struct {
	WordFile   string
	WordLength int
	WordCount  int
	Workers    int
	Quiet      bool
	Anagrams   bool

	LogLevel string
}

// Load loads the configs from the given arguments. The word file is the
// first positional argument. An optional second and third positional
// argument override the word count and word length, in that order.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("wordcliques", flag.ContinueOnError)

	fs.IntVar(&c.WordLength, "length", 5, "number of letters in each word")
	fs.IntVar(&c.WordCount, "count", 5, "number of words in each combination")
	fs.IntVar(&c.Workers, "workers", runtime.NumCPU(), "maximum concurrent search tasks per bucket")
	fs.BoolVar(&c.Quiet, "quiet", false, "do not print every combination, only the summary")
	fs.BoolVar(&c.Anagrams, "anagrams", false, "list the anagram substitutes under each combination")

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.WordFile = fs.Arg(0)
	if s := fs.Arg(1); s != "" {
		if c.WordCount, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("word count %q: %w", s, err)
		}
	}
	if s := fs.Arg(2); s != "" {
		if c.WordLength, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("word length %q: %w", s, err)
		}
	}
	return nil
}

// Validate checks the settings that must hold before any file is touched.
func (c *Config) Validate() error {
	if c.WordFile == "" {
		return errors.New("no input word file")
	}
	if err := search.CheckNumbers(c.WordLength, c.WordCount); err != nil {
		return err
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return nil
}
