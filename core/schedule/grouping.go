package schedule

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Week holds the entries of each class day. Every one of the six days is present, possibly empty.
type Week map[Weekday][]Entry

// GroupByDay partitions entries into the six class days, keeping their relative order.
// Entries with an unrecognized day are dropped.
func GroupByDay(entries []Entry) Week {
	week := make(Week, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = []Entry{}
	}
	for _, e := range entries {
		if !e.DayOfWeek.Valid() {
			continue
		}
		week[e.DayOfWeek] = append(week[e.DayOfWeek], e)
	}
	return week
}

// DistinctSubjects returns each subject once, in order of first appearance.
func DistinctSubjects(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	subjects := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Subject]; ok {
			continue
		}
		seen[e.Subject] = struct{}{}
		subjects = append(subjects, e.Subject)
	}
	return subjects
}

// minSimilarity is the lowest ratio for a subject to be suggested.
const minSimilarity = 0.5

// SimilarSubjects ranks subjects by their similarity to query, best match first.
// Subjects containing the query always rank above fuzzy matches. A blank query returns subjects as is.
// limit <= 0 means no limit.
func SimilarSubjects(subjects []string, query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return truncate(subjects, limit)
	}

	type scored struct {
		subject string
		score   float64
	}
	matches := make([]scored, 0, len(subjects))
	q := strings.Split(query, "")
	for _, subj := range subjects {
		lsubj := strings.ToLower(subj)
		score := difflib.NewMatcher(q, strings.Split(lsubj, "")).Ratio()
		if strings.Contains(lsubj, query) {
			score++
		}
		if score >= minSimilarity {
			matches = append(matches, scored{subject: subj, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	ranked := make([]string, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, m.subject)
	}
	return truncate(ranked, limit)
}

func truncate(s []string, limit int) []string {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
