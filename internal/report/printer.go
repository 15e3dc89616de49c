package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/domino14/wordcliques/internal/common"
	"github.com/domino14/wordcliques/internal/search"
)

var separator = strings.Repeat("-", 60)

// Timings are measured by the caller and printed at the end of a report.
type Timings struct {
	Load   time.Duration
	Rank   time.Duration
	Search time.Duration
	Report time.Duration
	Total  time.Duration
}

// Printer writes the sections of a report. After the first write error
// every call is a no-op and Err returns that error.
type Printer struct {
	// ShowAnagrams lists, under each solution, every combination its
	// anagrams can be swapped into.
	ShowAnagrams bool

	w   io.Writer
	err error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) Solutions(s *Summary) {
	for i := range s.Solutions {
		sol := &s.Solutions[i]
		p.printf("%s | %d | %s | skipped: %d\n", sol, sol.Index, sol.Mask.Binary(), sol.Skipped)
		if p.ShowAnagrams && sol.Extras > 0 {
			// The first combination is the canonical one printed above.
			for _, combo := range sol.Anagrams()[1:] {
				p.printf("    = %s\n", joinWords(combo))
			}
		}
	}
}

func joinWords(ws []common.Word) string {
	strs := make([]string, len(ws))
	for i, w := range ws {
		strs[i] = w.String()
	}
	return strings.Join(strs, " ")
}

func (p *Printer) Rounds(rounds []search.Round) {
	p.printf("%s\n", separator)
	for _, r := range rounds {
		p.printf("Loop depth: %d, matches: %s, elapsed: %s\n", r.Depth,
			humanize.Comma(int64(r.Matches)), r.Elapsed)
	}
}

func (p *Printer) Totals(s *Summary) {
	p.printf("Matches with anagrams: %s, total matches: %s\n",
		humanize.Comma(int64(s.Extras)), humanize.Comma(int64(s.Total)))
}

func (p *Printer) Timings(t Timings) {
	p.printf("%s\n", separator)
	p.printf("File reading elapsed: %s\n", t.Load)
	p.printf("Frequency analysing elapsed: %s\n", t.Rank)
	p.printf("Matching elapsed: %s\n", t.Search)
	p.printf("Printing elapsed: %s\n", t.Report)
	p.printf("Total elapsed: %s\n", t.Total)
}
