package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to word, or "" when nothing is
// near enough to be a plausible typo.
func Suggest(word string, candidates []string) string {
	word = strings.ToLower(word)
	if word == "" {
		return ""
	}

	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestDist := "", -1
	for _, cand := range sorted {
		dist := levenshtein.ComputeDistance(word, strings.ToLower(cand))
		if dist == 0 {
			return cand
		}
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	default:
		return 2
	}
}
