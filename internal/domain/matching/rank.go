package matching

import (
	"sort"
	"strings"
)

// Rank orders matches for presentation: score, then rating, then
// student count, all descending, with the profile id as the final
// tiebreaker so the order is total and stable across requests.
func Rank(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.TotalStudents != b.TotalStudents {
			return a.TotalStudents > b.TotalStudents
		}
		return strings.Compare(a.ProfileID.String(), b.ProfileID.String()) < 0
	})
}

// Top returns at most n leading matches without copying candidates.
func Top(matches []Match, n int) []Match {
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}
