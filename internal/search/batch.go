package search

import (
	"math/bits"

	"github.com/domino14/wordcliques/internal/common"
)

// Lanes is how many candidates one batch compares at a time.
const Lanes = 64

// matchBatch returns a bit set of the candidates disjoint from mask; bit
// i stands for candidates[i]. At most Lanes candidates are considered.
func matchBatch(mask common.RarityMask, candidates []common.RarityMask) uint64 {
	var hits uint64
	n := min(len(candidates), Lanes)
	for i, c := range candidates[:n] {
		var hit uint64
		if mask&c == 0 {
			hit = 1
		}
		hits |= hit << i
	}
	return hits
}

// appendMatches appends a child of e for every compatible word in
// candidates.
func appendMatches(out []Entry, e *Entry, candidates []common.RarityMask) []Entry {
	for start := 0; start < len(candidates); start += Lanes {
		batch := candidates[start:]
		hits := matchBatch(e.Mask, batch)
		for hits != 0 {
			i := bits.TrailingZeros64(hits)
			hits &= hits - 1
			out = append(out, e.extend(batch[i]))
		}
	}
	return out
}
