package schedule

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func datePtr(y int, m time.Month, d int) *civil.Date {
	dt := date(y, m, d)
	return &dt
}

func TestEntry_OccursOn(t *testing.T) {
	regular := Entry{DayOfWeek: Monday, Subject: "Math", Modality: ModalityInPerson}
	biweekly := Entry{DayOfWeek: Monday, Subject: "Lab", Modality: ModalityBiweekly, Biweekly: true, StartDate: datePtr(2024, 1, 1)}
	noStart := Entry{DayOfWeek: Monday, Subject: "Lab", Modality: ModalityBiweekly, Biweekly: true}
	flagged := Entry{DayOfWeek: Monday, Subject: "Lab", Modality: ModalityVirtual, Biweekly: true, StartDate: datePtr(2024, 1, 1)}
	unknown := Entry{DayOfWeek: "sunday", Subject: "Rest", Modality: ModalityInPerson}

	tests := []struct {
		name  string
		entry Entry
		date  civil.Date
		want  bool
	}{
		{name: "regular: matching weekday", entry: regular, date: date(2024, 1, 8), want: true},
		{name: "regular: before any start", entry: regular, date: date(2023, 12, 25), want: true},
		{name: "regular: other weekday", entry: regular, date: date(2024, 1, 9)},
		{name: "biweekly: start date", entry: biweekly, date: date(2024, 1, 1), want: true},
		{name: "biweekly: one week later", entry: biweekly, date: date(2024, 1, 8)},
		{name: "biweekly: two weeks later", entry: biweekly, date: date(2024, 1, 15), want: true},
		{name: "biweekly: two weeks before", entry: biweekly, date: date(2023, 12, 18)},
		{name: "biweekly: 64 weeks later", entry: biweekly, date: date(2025, 3, 24), want: true},
		{name: "biweekly: 65 weeks later", entry: biweekly, date: date(2025, 3, 31)},
		{name: "biweekly: without start date", entry: noStart, date: date(2024, 1, 1)},
		{name: "biweekly flag wins over modality", entry: flagged, date: date(2024, 1, 8)},
		{name: "unknown weekday", entry: unknown, date: date(2024, 1, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.OccursOn(tt.date); got != tt.want {
				t.Errorf("OccursOn(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
