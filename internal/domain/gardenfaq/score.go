package gardenfaq

import "strings"

const (
	exactKeyWeight    = 6
	partialKeyWeight  = 3
	questionWeight    = 1
	fallbackScore     = 1
	fallbackPrefixLen = 2
)

// Score rates how well query matches rec. It returns 0 for an empty query.
func Score(query string, rec Record) int {
	return ScoreNormalized(Normalize(query), rec)
}

// ScoreNormalized is Score for a query that has already been normalized.
func ScoreNormalized(query string, rec Record) int {
	if query == "" {
		return 0
	}
	score := 0
	for _, key := range rec.Keys {
		k := Normalize(key)
		if k == "" {
			continue
		}
		switch {
		case k == query:
			score += exactKeyWeight
		case overlaps(k, query):
			score += partialKeyWeight
		}
	}
	for _, qa := range rec.QA {
		q := Normalize(qa.Q)
		if q == "" {
			continue
		}
		if overlaps(q, query) {
			score += questionWeight
		}
	}
	return score
}

// overlaps reports whether either string contains the other.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
