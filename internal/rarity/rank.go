// Package rarity orders letters from rarest to commonest and files every
// word of the corpus under the rarest letter it contains.
package rarity

import (
	"sort"

	"github.com/domino14/wordcliques/internal/common"
)

// Ranking maps a letter index (a=0) to its rarity rank. Rank 0 is the
// least frequent letter.
type Ranking [common.AlphabetSize]int

// Rank sorts letters ascending by count. Letters with equal counts keep
// alphabetical order.
func Rank(freq [common.AlphabetSize]int) Ranking {
	letters := make([]int, common.AlphabetSize)
	for i := range letters {
		letters[i] = i
	}
	sort.SliceStable(letters, func(i, j int) bool {
		return freq[letters[i]] < freq[letters[j]]
	})
	var r Ranking
	for rank, l := range letters {
		r[l] = rank
	}
	return r
}

// Order lists the letters rarest first.
func (r Ranking) Order() string {
	out := make([]byte, common.AlphabetSize)
	for l, rank := range r {
		out[rank] = byte('a' + l)
	}
	return string(out)
}

// RarityMask moves every letter bit of m to that letter's rank.
func (r Ranking) RarityMask(m common.LetterMask) common.RarityMask {
	var rm common.RarityMask
	for m != 0 {
		l := common.RarityMask(m).Lowest()
		m &^= 1 << l
		rm |= 1 << r[l]
	}
	return rm
}
