package search

import "github.com/domino14/wordcliques/internal/common"

// Entry is a combination of disjoint words under construction.
type Entry struct {
	// Masks holds the words in the order they were added, which is
	// also ascending order of their rarest letter.
	Masks []common.RarityMask
	// Mask is the union of Masks.
	Mask common.RarityMask
	// Next is the rank the next word must cover.
	Next int
	// Skipped counts the ranks below Next that no word covers.
	Skipped int
}

// newEntry seeds a combination with a word whose rarest letter has the
// given rank. Every rank below it is left uncovered.
func newEntry(m common.RarityMask, rank int) Entry {
	e := Entry{
		Masks:   []common.RarityMask{m},
		Mask:    m,
		Next:    rank,
		Skipped: rank,
	}
	e.advance()
	return e
}

func (e *Entry) advance() {
	e.Next = e.Mask.NextUnset(e.Next)
}

// extend returns a copy of e with m added. The caller has checked that m
// is disjoint from e.Mask and that its rarest letter is e.Next.
func (e *Entry) extend(m common.RarityMask) Entry {
	masks := make([]common.RarityMask, len(e.Masks), len(e.Masks)+1)
	copy(masks, e.Masks)
	child := Entry{
		Masks:   append(masks, m),
		Mask:    e.Mask | m,
		Next:    e.Next,
		Skipped: e.Skipped,
	}
	child.advance()
	return child
}
