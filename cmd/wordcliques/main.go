// Command wordcliques finds every set of words with no letter in common,
// such as five five-letter words that use 25 different letters.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordcliques/config"
	"github.com/domino14/wordcliques/internal/rarity"
	"github.com/domino14/wordcliques/internal/report"
	"github.com/domino14/wordcliques/internal/search"
	"github.com/domino14/wordcliques/internal/wordlist"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}
	setLogLevel(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	log.Debug().Interface("config", cfg).Msg("input")

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func timeTrack(start time.Time, name string) time.Duration {
	elapsed := time.Since(start)
	log.Info().Msgf("%s took %s", name, elapsed)
	return elapsed
}

// run does the whole search for a validated config and writes the report
// to out. Nothing is written if the word file cannot be opened.
func run(cfg *config.Config, out io.Writer) error {
	var t report.Timings
	begin := time.Now()

	src, err := wordlist.Open(cfg.WordFile)
	if err != nil {
		return err
	}
	defer src.Close()
	corpus := wordlist.Load(src.Bytes(), cfg.WordLength)
	t.Load = timeTrack(begin, "loading")

	start := time.Now()
	buckets := rarity.NewBuckets(corpus.Masks, rarity.Rank(corpus.Frequency))
	t.Rank = timeTrack(start, "ranking")

	start = time.Now()
	engine, err := search.New(buckets, search.Options{
		WordLength: cfg.WordLength,
		WordCount:  cfg.WordCount,
		Workers:    cfg.Workers,
	})
	if err != nil {
		return err
	}
	res, err := engine.Run()
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	t.Search = timeTrack(start, "search")

	start = time.Now()
	summary := report.Assemble(corpus, buckets, res.Entries)
	p := report.NewPrinter(out)
	p.ShowAnagrams = cfg.Anagrams
	if !cfg.Quiet {
		p.Solutions(summary)
	}
	p.Rounds(res.Rounds)
	p.Totals(summary)
	t.Report = time.Since(start)
	t.Total = time.Since(begin)
	p.Timings(t)
	if err := p.Err(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
