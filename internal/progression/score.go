package progression

import (
	"math"
	"strings"
)

// ScoreEntries maps a criterion title to an integer score in [0,100].
// An absent title means the criterion is unset and contributes 0.
type ScoreEntries map[string]int

// ValidateScore checks a raw score at the entry boundary.
func ValidateScore(score int) error {
	if score < 0 || score > 100 {
		return ErrScoreOutOfRange
	}
	return nil
}

// ComputeComposite computes the weighted composite score for a stage:
// round(sum(score_i * weight_i / 100)) with round-half-up. Unset criteria
// contribute 0; entry titles not present in the set are ignored and returned
// so the caller can log the anomaly. An empty set yields 0.
//
// Out-of-range scores are not rejected here; they must be caught by
// ValidateScore at the score-entry boundary.
func ComputeComposite(set *CriterionSet, entries ScoreEntries) (int, []string) {
	var unknown []string
	for title := range entries {
		if !set.Contains(title) {
			unknown = append(unknown, title)
		}
	}

	sum := 0.0
	for _, c := range set.Criteria() {
		score, ok := lookupFold(entries, c.Title)
		if !ok {
			continue
		}
		sum += float64(score) * float64(c.Percentage) / 100.0
	}
	return int(math.Floor(sum + 0.5)), unknown
}

// lookupFold matches entry titles against a criterion title the same way the
// set does: exact first, then case-insensitive.
func lookupFold(entries ScoreEntries, title string) (int, bool) {
	if v, ok := entries[title]; ok {
		return v, true
	}
	for k, v := range entries {
		if strings.EqualFold(k, title) {
			return v, true
		}
	}
	return 0, false
}
