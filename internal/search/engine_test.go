package search

import (
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordcliques/internal/common"
	"github.com/domino14/wordcliques/internal/rarity"
	"github.com/domino14/wordcliques/internal/wordlist"
)

type fixture struct {
	corpus  *wordlist.Corpus
	buckets *rarity.Buckets
}

func newFixture(words []string, length int) *fixture {
	c := wordlist.Load([]byte(strings.Join(words, "\n")), length)
	r := rarity.Rank(c.Frequency)
	return &fixture{corpus: c, buckets: rarity.NewBuckets(c.Masks, r)}
}

func (f *fixture) run(t *testing.T, opts Options) *Result {
	t.Helper()
	e, err := New(f.buckets, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)
	return res
}

// key renders a combination as its sorted canonical words.
func (f *fixture) key(en Entry) string {
	ws := []string{}
	for _, rm := range en.Masks {
		ws = append(ws, f.corpus.Words[f.corpus.Index[f.buckets.Origin[rm]]].String())
	}
	sort.Strings(ws)
	return strings.Join(ws, " ")
}

func (f *fixture) keys(entries []Entry) []string {
	ks := []string{}
	for _, en := range entries {
		ks = append(ks, f.key(en))
	}
	sort.Strings(ks)
	return ks
}

// bruteForce lists every set of count pairwise disjoint canonical words.
func (f *fixture) bruteForce(count int) []string {
	found := []string{}
	var walk func(from int, mask common.LetterMask, picked []string)
	walk = func(from int, mask common.LetterMask, picked []string) {
		if len(picked) == count {
			ws := slices.Clone(picked)
			sort.Strings(ws)
			found = append(found, strings.Join(ws, " "))
			return
		}
		for i := from; i < len(f.corpus.Masks); i++ {
			m := f.corpus.Masks[i]
			if m&mask != 0 {
				continue
			}
			walk(i+1, mask|m, append(picked, f.corpus.Words[i].String()))
		}
	}
	walk(0, 0, nil)
	sort.Strings(found)
	return found
}

func randomWords(seed uint64, n, length int) []string {
	rng := rand.New(rand.NewPCG(seed, seed*31+7))
	words := make([]string, 0, n)
	for len(words) < n {
		letters := rng.Perm(common.AlphabetSize)[:length]
		b := make([]byte, length)
		for i, l := range letters {
			b[i] = byte('a' + l)
		}
		words = append(words, string(b))
	}
	return words
}

func TestNewRejectsBadNumbers(t *testing.T) {
	f := newFixture(nil, 5)
	for _, opts := range []Options{
		{WordLength: 0, WordCount: 5},
		{WordLength: 5, WordCount: 0},
		{WordLength: 9, WordCount: 3},
		{WordLength: 27, WordCount: 1},
		{WordLength: 4611686018427387905, WordCount: 3},
		{WordLength: 3, WordCount: 4611686018427387905},
	} {
		_, err := New(f.buckets, opts)
		assert.ErrorIs(t, err, ErrInvalidNumbers)
	}
	_, err := New(f.buckets, Options{WordLength: 5, WordCount: 5})
	require.NoError(t, err)
	assert.NoError(t, CheckNumbers(2, 13))
	assert.NoError(t, CheckNumbers(26, 1))
	assert.ErrorIs(t, CheckNumbers(-4, -5), ErrInvalidNumbers)
}

func TestFiveDisjointWords(t *testing.T) {
	f := newFixture([]string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"}, 5)
	res := f.run(t, Options{WordLength: 5, WordCount: 5, Workers: 2})

	require.Len(t, res.Entries, 1)
	en := res.Entries[0]
	assert.Equal(t, []string{"abcde fghij klmno pqrst uvwxy"}, f.keys(res.Entries))
	assert.Equal(t, 25, en.Mask.Count())
	assert.Equal(t, 1, en.Skipped)
	assert.Len(t, res.Rounds, 5)
	assert.Equal(t, 0, res.Rounds[0].Depth)
	assert.Equal(t, 1, res.Rounds[4].Matches)
}

func TestRepeatedLetterNeverUsed(t *testing.T) {
	f := newFixture([]string{"hello", "abcde", "fgijk", "mnpqr", "stuvw", "xyzlo"}, 5)
	res := f.run(t, Options{WordLength: 5, WordCount: 5})
	for _, k := range f.keys(res.Entries) {
		assert.NotContains(t, k, "hello")
	}
	assert.Equal(t, []string{"abcde fgijk mnpqr stuvw xyzlo"}, f.keys(res.Entries))
}

func TestZeroSkipBudget(t *testing.T) {
	words := []string{}
	for l := byte('a'); l < 'z'; l += 2 {
		words = append(words, string([]byte{l, l + 1}))
	}
	// Some distractors that overlap the pairs.
	words = append(words, "bc", "yx", "ad", "mz")
	f := newFixture(words, 2)
	res := f.run(t, Options{WordLength: 2, WordCount: 13})

	require.NotEmpty(t, res.Entries)
	for _, en := range res.Entries {
		assert.Equal(t, 0, en.Skipped)
		assert.Equal(t, 26, en.Mask.Count())
	}
	assert.Equal(t, f.bruteForce(13), f.keys(res.Entries))
}

func TestSingleWord(t *testing.T) {
	f := newFixture([]string{"abc", "def", "aab", "cab"}, 3)
	res := f.run(t, Options{WordLength: 3, WordCount: 1})
	assert.Equal(t, []string{"abc", "def"}, f.keys(res.Entries))
	assert.Len(t, res.Rounds, 1)
}

func TestNoCombination(t *testing.T) {
	f := newFixture([]string{"abcde", "bcdef", "cdefg"}, 5)
	res := f.run(t, Options{WordLength: 5, WordCount: 2})
	assert.Empty(t, res.Entries)
	assert.Equal(t, 0, res.Rounds[1].Matches)
}

func TestMatchesBruteForce(t *testing.T) {
	cases := []struct {
		seed          uint64
		n             int
		length, count int
	}{
		{1, 80, 3, 4},
		{2, 120, 4, 3},
		{3, 60, 2, 6},
		{4, 400, 5, 3},
		{5, 40, 3, 8},
	}
	for _, tc := range cases {
		f := newFixture(randomWords(tc.seed, tc.n, tc.length), tc.length)
		res := f.run(t, Options{WordLength: tc.length, WordCount: tc.count, Workers: 3})
		got := f.keys(res.Entries)

		assert.Equal(t, f.bruteForce(tc.count), got, "seed %d", tc.seed)
		// No set may be produced twice.
		assert.Equal(t, len(got), len(slices.Compact(slices.Clone(got))))

		allowed := 26 - tc.length*tc.count
		for _, en := range res.Entries {
			require.Len(t, en.Masks, tc.count)
			var union common.RarityMask
			for i, a := range en.Masks {
				for _, b := range en.Masks[i+1:] {
					assert.Zero(t, a&b)
				}
				union |= a
			}
			assert.Equal(t, union, en.Mask)
			assert.Equal(t, tc.length*tc.count, en.Mask.Count())
			assert.LessOrEqual(t, en.Skipped, allowed)
		}
	}
}

func TestIdempotent(t *testing.T) {
	f := newFixture(randomWords(9, 300, 4), 4)
	opts := Options{WordLength: 4, WordCount: 4, Workers: 4}
	first := f.run(t, opts)
	second := f.run(t, Options{WordLength: 4, WordCount: 4, Workers: 1})

	skips := func(res *Result) map[string]int {
		m := map[string]int{}
		for _, en := range res.Entries {
			m[f.key(en)] = en.Skipped
		}
		return m
	}
	assert.Equal(t, skips(first), skips(second))
	assert.Equal(t, len(first.Entries), len(second.Entries))
}

func TestManyEntriesPerBucket(t *testing.T) {
	// Enough seeds to split a bucket over several tasks.
	f := newFixture(randomWords(11, 2000, 3), 3)
	res := f.run(t, Options{WordLength: 3, WordCount: 2, Workers: 4})
	assert.Equal(t, f.bruteForce(2), f.keys(res.Entries))
}
