// Package search finds every combination of letter-disjoint words in a
// bucketed corpus.
//
// A combination is built one word at a time in ascending order of each
// word's rarest letter. Ranks are visited from rarest to commonest; each
// rank either gets covered by the next word, whose rarest letter it must
// be, or is left uncovered, which spends one of the skips the combination
// can afford. Because the order is fixed, every set of words is built
// exactly once.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/fatih/semgroup"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordcliques/internal/common"
	"github.com/domino14/wordcliques/internal/rarity"
)

// entriesPerTask is how many entries of one bucket a single task extends.
const entriesPerTask = 256

var ErrInvalidNumbers = errors.New("invalid numbers")

type Options struct {
	WordLength int
	WordCount  int
	// Workers bounds the concurrent tasks working on one bucket.
	// Zero means runtime.NumCPU().
	Workers int
}

// Round records the effect of one search depth.
type Round struct {
	Depth   int
	Matches int
	Elapsed time.Duration
}

type Result struct {
	// Entries are the complete combinations.
	Entries []Entry
	// Rounds has one element for seeding plus one per extension.
	Rounds []Round
}

type Engine struct {
	buckets      *rarity.Buckets
	wordCount    int
	allowedSkips int
	workers      int
}

// CheckNumbers reports whether count words of length letters fit in the
// alphabet.
func CheckNumbers(length, count int) error {
	// Bound both before multiplying so the product cannot overflow.
	if length <= 0 || count <= 0 || length > common.AlphabetSize ||
		count > common.AlphabetSize || length*count > common.AlphabetSize {
		return fmt.Errorf("%w: length %d, count %d", ErrInvalidNumbers, length, count)
	}
	return nil
}

func New(b *rarity.Buckets, opts Options) (*Engine, error) {
	if err := CheckNumbers(opts.WordLength, opts.WordCount); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		buckets:      b,
		wordCount:    opts.WordCount,
		allowedSkips: common.AlphabetSize - opts.WordLength*opts.WordCount,
		workers:      workers,
	}, nil
}

// Run searches the whole corpus. The returned entries hold exactly
// WordCount words each.
func (e *Engine) Run() (*Result, error) {
	res := &Result{}
	start := time.Now()
	entries := e.seed()
	res.Rounds = append(res.Rounds, Round{Depth: 0, Matches: count(entries), Elapsed: time.Since(start)})

	for depth := 1; depth < e.wordCount; depth++ {
		start := time.Now()
		next, err := e.extend(entries)
		if err != nil {
			return nil, fmt.Errorf("depth %d: %w", depth, err)
		}
		entries = next
		r := Round{Depth: depth, Matches: count(entries), Elapsed: time.Since(start)}
		log.Debug().Int("depth", r.Depth).Int("matches", r.Matches).Dur("elapsed", r.Elapsed).Msg("round")
		res.Rounds = append(res.Rounds, r)
	}

	for _, bucket := range entries {
		res.Entries = append(res.Entries, bucket...)
	}
	return res, nil
}

// seed starts one entry per word whose rarest letter leaves no more
// ranks uncovered below it than the combination can afford.
func (e *Engine) seed() [][]Entry {
	entries := make([][]Entry, e.allowedSkips+1)
	for rank := range entries {
		masks := e.buckets.Masks[rank]
		entries[rank] = make([]Entry, 0, len(masks))
		for _, m := range masks {
			entries[rank] = append(entries[rank], newEntry(m, rank))
		}
	}
	return entries
}

// extend runs one round. Buckets are processed independently and their
// children stay in the bucket of their parent.
func (e *Engine) extend(entries [][]Entry) ([][]Entry, error) {
	next := make([][]Entry, len(entries))
	var g errgroup.Group
	for i, bucket := range entries {
		if len(bucket) == 0 {
			continue
		}
		g.Go(func() error {
			children, err := e.extendBucket(bucket)
			if err != nil {
				return fmt.Errorf("bucket %d: %w", i, err)
			}
			next[i] = children
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

func (e *Engine) extendBucket(bucket []Entry) ([]Entry, error) {
	tasks := (len(bucket) + entriesPerTask - 1) / entriesPerTask
	parts := make([][]Entry, tasks)
	sg := semgroup.NewGroup(context.Background(), int64(e.workers))
	for t := range tasks {
		chunk := bucket[t*entriesPerTask : min((t+1)*entriesPerTask, len(bucket))]
		sg.Go(func() error {
			var out []Entry
			for i := range chunk {
				out = e.extendEntry(out, chunk[i])
			}
			parts[t] = out
			return nil
		})
	}
	if err := sg.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	children := make([]Entry, 0, n)
	for _, p := range parts {
		children = append(children, p...)
	}
	return children, nil
}

// extendEntry appends every child of parent to out. parent is a copy; its
// Next and Skipped move forward as ranks are left uncovered.
func (e *Engine) extendEntry(out []Entry, parent Entry) []Entry {
	for parent.Next < common.AlphabetSize {
		out = appendMatches(out, &parent, e.buckets.Masks[parent.Next])
		if parent.Skipped >= e.allowedSkips {
			break
		}
		parent.Skipped++
		parent.advance()
	}
	return out
}

func count(entries [][]Entry) int {
	n := 0
	for _, b := range entries {
		n += len(b)
	}
	return n
}
