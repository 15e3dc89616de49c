package common

import (
	"fmt"
	"math/bits"
)

// AlphabetSize is the number of letters a mask can hold.
const AlphabetSize = 26

// Word is a view into the loaded word list. It is never copied.
type Word []byte

func (w Word) String() string {
	return string(w) // stop saying word so much
}

// LetterMask has bit c set iff letter 'a'+c occurs in a word.
type LetterMask uint32

// MaskOf returns the letter mask of word. It returns false if the word
// contains anything besides the lowercase letters a-z.
func MaskOf(word []byte) (LetterMask, bool) {
	var m LetterMask
	for _, c := range word {
		if c < 'a' || c > 'z' {
			return 0, false
		}
		m |= 1 << (c - 'a')
	}
	return m, true
}

func (m LetterMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// RarityMask is a LetterMask whose bits were moved to the rarity rank of
// each letter. Bit 0 is the rarest letter of the corpus.
type RarityMask uint32

func (m RarityMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Lowest returns the rank of the rarest letter in the mask, or
// AlphabetSize if the mask is empty.
func (m RarityMask) Lowest() int {
	if m == 0 {
		return AlphabetSize
	}
	return bits.TrailingZeros32(uint32(m))
}

// NextUnset returns the smallest rank greater than p whose bit is not set.
// A run of set bits is passed over in one step.
func (m RarityMask) NextUnset(p int) int {
	step := p + 1
	if step >= 32 {
		return step
	}
	return bits.TrailingZeros32(^(uint32(m) >> step)) + step
}

// Binary renders the mask as 26 binary digits, rank 25 first.
func (m RarityMask) Binary() string {
	return fmt.Sprintf("%026b", uint32(m))
}
