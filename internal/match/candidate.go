package match

import (
	"sort"
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64 // NameScore against the target (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against target, best first.
func RankCandidates(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, Candidate{Name: name, Score: NameScore(target, name)})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}
	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}
	return names
}

// DefaultMinScore is the lowest score worth suggesting.
const DefaultMinScore = 0.6

// Suggest returns up to n known names close enough to target to be shown as
// "did you mean" hints.
func Suggest(target string, names []string, n int) []string {
	return RankCandidates(target, names).AboveThreshold(DefaultMinScore).Top(n).Names()
}
