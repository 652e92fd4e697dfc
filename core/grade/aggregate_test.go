package grade

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestAggregateBySubject(t *testing.T) {
	day := civil.Date{Year: 2024, Month: 3, Day: 1}
	e := func(id int, subject string, grade, pct float64) Entry {
		return Entry{ID: id, Subject: subject, Grade: grade, Percentage: pct, Date: day}
	}

	tests := []struct {
		name      string
		entries   []Entry
		subject   string
		wantFinal float64
		wantTotal float64
	}{
		{
			name:      "weighted mean",
			entries:   []Entry{e(1, "Math", 4.0, 30), e(2, "Math", 3.0, 30)},
			subject:   "Math",
			wantFinal: 3.5,
			wantTotal: 60,
		},
		{
			name:      "percentages above 100",
			entries:   []Entry{e(1, "Math", 5.0, 80), e(2, "Math", 2.0, 80)},
			subject:   "Math",
			wantFinal: 3.5,
			wantTotal: 160,
		},
		{
			name:      "zero percentages",
			entries:   []Entry{e(1, "Art", 5.0, 0), e(2, "Art", 4.0, 0)},
			subject:   "Art",
			wantFinal: 0,
			wantTotal: 0,
		},
		{
			name:      "subjects are not merged",
			entries:   []Entry{e(1, "Math", 4.0, 50), e(2, "math", 1.0, 50)},
			subject:   "Math",
			wantFinal: 4.0,
			wantTotal: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateBySubject(tt.entries)
			s, ok := got.Get(tt.subject)
			if !assert.True(t, ok) {
				return
			}
			assert.InDelta(t, tt.wantFinal, s.FinalGrade, 1e-9)
			assert.Equal(t, tt.wantTotal, s.TotalPercentage)
		})
	}
}

func TestAggregateBySubject_Order(t *testing.T) {
	entries := []Entry{
		{ID: 1, Subject: "Physics", Grade: 3, Percentage: 20},
		{ID: 2, Subject: "Math", Grade: 4, Percentage: 20},
		{ID: 3, Subject: "Physics", Grade: 5, Percentage: 20},
	}
	got := AggregateBySubject(entries)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "Physics", got[0].Subject)
		assert.Equal(t, []Entry{entries[0], entries[2]}, got[0].Entries)
		assert.Equal(t, 4.0, got[0].FinalGrade)
		assert.True(t, got[0].Passing(PassingGrade))
		assert.Equal(t, "Math", got[1].Subject)
	}

	assert.Empty(t, AggregateBySubject(nil))
	_, ok := AggregateBySubject(nil).Get("Math")
	assert.False(t, ok)
}
