package match

import (
	"slices"
)

// MinSimilarity is the lowest Similarity score Suggest reports.
const MinSimilarity = 0.5

// Candidate is a known name scored against the misspelt input.
type Candidate struct {
	Name  string
	Score float64
}

// RankCandidates scores every known name against name after normalization
// and returns them best first. Ties keep the order of known.
func RankCandidates(name string, known []string) []Candidate {
	norm := NormalizeIdent(name)

	res := make([]Candidate, 0, len(known))
	for _, k := range known {
		res = append(res, Candidate{Name: k, Score: Similarity(norm, NormalizeIdent(k))})
	}

	slices.SortStableFunc(res, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return res
}

// Suggest returns up to limit known names close enough to name, best first.
func Suggest(name string, known []string, limit int) []string {
	var res []string

	for _, c := range RankCandidates(name, known) {
		if len(res) == limit || c.Score < MinSimilarity {
			break
		}

		res = append(res, c.Name)
	}

	return res
}
