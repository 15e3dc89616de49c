// Package report turns finished combinations back into words and prints
// them.
package report

import (
	"github.com/domino14/wordcliques/internal/common"
	"github.com/domino14/wordcliques/internal/rarity"
	"github.com/domino14/wordcliques/internal/search"
	"github.com/domino14/wordcliques/internal/wordlist"
)

// Solution is one combination of canonical words.
type Solution struct {
	// Index is the 1-based ordinal of the combination.
	Index int
	Words []common.Word
	// Groups holds, per word, its other anagrams.
	Groups  [][]common.Word
	Mask    common.RarityMask
	Skipped int
	// Extras is how many more combinations anagram substitution gives.
	Extras int
}

func (s *Solution) String() string {
	return joinWords(s.Words)
}

// Anagrams lists every combination with the same letters as s, the
// canonical one first.
func (s *Solution) Anagrams() [][]common.Word {
	combos := [][]common.Word{{}}
	for i, w := range s.Words {
		choices := append([]common.Word{w}, s.Groups[i]...)
		next := make([][]common.Word, 0, len(combos)*len(choices))
		for _, c := range combos {
			for _, choice := range choices {
				combo := make([]common.Word, len(c), len(c)+1)
				copy(combo, c)
				next = append(next, append(combo, choice))
			}
		}
		combos = next
	}
	return combos
}

type Summary struct {
	Solutions []Solution
	// Matches counts combinations of canonical words.
	Matches int
	// Extras counts the combinations anagrams add to Matches.
	Extras int
	Total  int
}

// Assemble maps each entry's rarity masks back to canonical words.
func Assemble(c *wordlist.Corpus, b *rarity.Buckets, entries []search.Entry) *Summary {
	s := &Summary{Solutions: make([]Solution, 0, len(entries))}
	for i, en := range entries {
		sol := Solution{
			Index:   i + 1,
			Words:   make([]common.Word, 0, len(en.Masks)),
			Groups:  make([][]common.Word, 0, len(en.Masks)),
			Mask:    en.Mask,
			Skipped: en.Skipped,
		}
		product := 1
		for _, rm := range en.Masks {
			lm, ok := b.Origin[rm]
			if !ok {
				continue
			}
			idx, ok := c.Index[lm]
			if !ok {
				continue
			}
			sol.Words = append(sol.Words, c.Words[idx])
			sol.Groups = append(sol.Groups, c.Anagrams[idx])
			product *= 1 + c.GroupSize(idx)
		}
		sol.Extras = product - 1
		s.Extras += sol.Extras
		s.Solutions = append(s.Solutions, sol)
	}
	s.Matches = len(s.Solutions)
	s.Total = s.Matches + s.Extras
	return s
}
