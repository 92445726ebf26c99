package gardenfaq

import (
	"sort"
	"strings"
)

const (
	// CategoryAll disables category filtering.
	CategoryAll = "all"
	// MaxResults caps the number of matches returned by Search.
	MaxResults = 3
)

// Search ranks the records of db in category against query and returns at
// most MaxResults matches. Ties keep document order. When keyword scoring
// finds nothing, records whose keys start with the first two runes of the
// normalized query are returned with score 1.
func Search(query string, db *Database, category string) []Match {
	out := []Match{}
	if db == nil {
		return out
	}
	normalized := Normalize(query)
	candidates := filterCategory(db.Items, category)

	for _, rec := range candidates {
		if score := ScoreNormalized(normalized, rec); score > 0 {
			out = append(out, Match{Record: rec, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) == 0 {
		out = prefixFallback(normalized, candidates)
	}
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}

func filterCategory(items []Record, category string) []Record {
	if category == "" || category == CategoryAll {
		return items
	}
	filtered := make([]Record, 0, len(items))
	for _, rec := range items {
		if rec.Category == category {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func prefixFallback(normalized string, candidates []Record) []Match {
	out := []Match{}
	head := []rune(normalized)
	if len(head) < fallbackPrefixLen {
		return out
	}
	prefix := string(head[:fallbackPrefixLen])
	for _, rec := range candidates {
		for _, key := range rec.Keys {
			if strings.HasPrefix(Normalize(key), prefix) {
				out = append(out, Match{Record: rec, Score: fallbackScore})
				break
			}
		}
	}
	return out
}

// Categories lists CategoryAll followed by the distinct categories of db in document order.
func Categories(db *Database) []string {
	out := []string{CategoryAll}
	if db == nil {
		return out
	}
	seen := map[string]struct{}{CategoryAll: {}}
	for _, rec := range db.Items {
		if rec.Category == "" {
			continue
		}
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		out = append(out, rec.Category)
	}
	return out
}
