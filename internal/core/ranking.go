package core

import (
	"math"
	"sort"
)

const maxNormalizedScore = 1000.0

// NormalizedScoreTable holds wallet scores in raw-table insertion order.
type NormalizedScoreTable []WalletScore

// NormalizeScores rescales raw scores against the batch maximum onto [0, 1000].
// When every raw score is zero every wallet maps to 0.
func NormalizeScores(raw RawScoreTable) NormalizedScoreTable {
	out := make(NormalizedScoreTable, 0, raw.Len())
	if raw.Len() == 0 {
		return out
	}

	maxRaw := raw.max()
	for _, entry := range raw.Entries() {
		var score float64
		if maxRaw != 0 {
			score = roundTo(entry.Score/maxRaw*maxNormalizedScore, 2)
		}
		out = append(out, WalletScore{
			Wallet:   entry.Wallet,
			RawScore: entry.Score,
			Score:    score,
		})
	}
	return out
}

func (t NormalizedScoreTable) Get(wallet string) (float64, bool) {
	for _, s := range t {
		if s.Wallet == wallet {
			return s.Score, true
		}
	}
	return 0, false
}

// Ranked orders scores descending; equal scores keep insertion order.
func (t NormalizedScoreTable) Ranked() []WalletScore {
	ranked := make([]WalletScore, len(t))
	copy(ranked, t)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
