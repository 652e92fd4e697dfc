package grade

// SubjectSummary holds the entries of one subject and their weighted final grade.
type SubjectSummary struct {
	Subject         string  `json:"subject"`
	Entries         []Entry `json:"entries"`
	FinalGrade      float64 `json:"final_grade"`
	TotalPercentage float64 `json:"total_percentage"`
}

// Passing reports whether the final grade reaches threshold.
func (s SubjectSummary) Passing(threshold float64) bool {
	return s.FinalGrade >= threshold
}

// Summaries are ordered by first appearance of their subject.
type Summaries []SubjectSummary

// Get returns the summary of subject.
func (ss Summaries) Get(subject string) (SubjectSummary, bool) {
	for _, s := range ss {
		if s.Subject == subject {
			return s, true
		}
	}
	return SubjectSummary{}, false
}

// AggregateBySubject groups entries by exact subject and computes each subject's final grade:
// the percentage-weighted mean of its grades, or 0 when its percentages add up to 0.
// Percentages need not add up to 100. No rounding is done.
func AggregateBySubject(entries []Entry) Summaries {
	summaries := make(Summaries, 0)
	index := make(map[string]int)
	weighted := make([]float64, 0)

	for _, e := range entries {
		i, ok := index[e.Subject]
		if !ok {
			i = len(summaries)
			index[e.Subject] = i
			summaries = append(summaries, SubjectSummary{Subject: e.Subject, Entries: []Entry{}})
			weighted = append(weighted, 0)
		}
		summaries[i].Entries = append(summaries[i].Entries, e)
		summaries[i].TotalPercentage += e.Percentage
		weighted[i] += e.Grade * e.Percentage
	}

	for i := range summaries {
		if total := summaries[i].TotalPercentage; total > 0 {
			summaries[i].FinalGrade = weighted[i] / total
		}
	}
	return summaries
}
