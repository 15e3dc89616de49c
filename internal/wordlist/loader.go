// Package wordlist turns a raw word list into the table of unique letter
// masks the search runs on. Words that are anagrams of an earlier word
// are grouped under that word instead of being searched again.
package wordlist

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordcliques/internal/common"
)

type Corpus struct {
	WordLength int
	// Masks and Words are parallel; index i is the canonical word for
	// Masks[i], the first one seen with those letters.
	Masks []common.LetterMask
	Words []common.Word
	Index map[common.LetterMask]int
	// Anagrams holds the other words sharing a canonical word's mask,
	// keyed by canonical index. The canonical word is not included.
	Anagrams map[int][]common.Word
	// Frequency counts letters over canonical words only.
	Frequency [common.AlphabetSize]int
	Rejected  int
}

// Load reads every line of data and keeps the words with exactly
// wordLength distinct lowercase letters. Lines may end in \n, \r or both.
func Load(data []byte, wordLength int) *Corpus {
	c := &Corpus{
		WordLength: wordLength,
		Index:      make(map[common.LetterMask]int),
		Anagrams:   make(map[int][]common.Word),
	}
	start := 0
	for i, b := range data {
		if b != '\n' && b != '\r' {
			continue
		}
		c.add(data[start:i])
		start = i + 1
	}
	if start < len(data) {
		c.add(data[start:])
	}
	log.Debug().Int("unique", len(c.Masks)).Int("anagrams", c.anagramCount()).
		Int("rejected", c.Rejected).Msg("loaded word list")
	return c
}

func (c *Corpus) add(record []byte) {
	if len(record) == 0 {
		// Blank line, or the middle of a \r\n pair.
		return
	}
	if len(record) != c.WordLength {
		c.Rejected++
		return
	}
	mask, ok := common.MaskOf(record)
	if !ok || mask.Count() != c.WordLength {
		c.Rejected++
		return
	}
	word := common.Word(record)
	if idx, ok := c.Index[mask]; ok {
		c.Anagrams[idx] = append(c.Anagrams[idx], word)
		return
	}
	for _, l := range record {
		c.Frequency[l-'a']++
	}
	c.Index[mask] = len(c.Words)
	c.Masks = append(c.Masks, mask)
	c.Words = append(c.Words, word)
}

// GroupSize is the number of anagrams of canonical word idx besides itself.
func (c *Corpus) GroupSize(idx int) int {
	return len(c.Anagrams[idx])
}

func (c *Corpus) anagramCount() int {
	n := 0
	for _, g := range c.Anagrams {
		n += len(g)
	}
	return n
}
