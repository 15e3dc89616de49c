package rarity

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordcliques/internal/common"
)

// Buckets holds every unique word as a rarity mask, filed by the rank of
// its rarest letter. Nothing here changes once NewBuckets returns.
type Buckets struct {
	Masks [common.AlphabetSize][]common.RarityMask
	// Origin maps a rarity mask back to the letter mask it came from.
	Origin map[common.RarityMask]common.LetterMask
}

func NewBuckets(masks []common.LetterMask, r Ranking) *Buckets {
	b := &Buckets{
		Origin: make(map[common.RarityMask]common.LetterMask, len(masks)),
	}
	for _, m := range masks {
		if m == 0 {
			continue
		}
		rm := r.RarityMask(m)
		low := rm.Lowest()
		b.Masks[low] = append(b.Masks[low], rm)
		b.Origin[rm] = m
	}
	if e := log.Debug(); e.Enabled() {
		sizes := make([]int, common.AlphabetSize)
		for i := range b.Masks {
			sizes[i] = len(b.Masks[i])
		}
		e.Str("order", r.Order()).Ints("buckets", sizes).Msg("bucketed words")
	}
	return b
}
