// Package calendar builds Monday-first month grids of the classes a student has each day.
package calendar

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/schedule"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

type (
	Class struct {
		Subject  string            `json:"subject"`
		Modality schedule.Modality `json:"modality"`
		Biweekly bool              `json:"biweekly"`
	}

	// Cell is one day of the grid. Day is nil for the padding cells outside the month.
	Cell struct {
		Day     *int    `json:"day"`
		Classes []Class `json:"classes"`
		Today   bool    `json:"today,omitempty"`
	}

	// Week runs Monday to Sunday.
	Week [7]Cell

	Month []Week
)

// BuildMonth returns the weeks covering the given month, with the classes of every day.
// The first and last weeks are padded with empty cells. today only marks the matching cell.
func BuildMonth(year, month int, entries []schedule.Entry, today civil.Date) (Month, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	first := civil.Date{Year: year, Month: time.Month(month), Day: 1}
	offset := core.MondayIndex(core.Weekday(first))
	days := core.DaysIn(year, time.Month(month))

	cells := make([]Cell, 0, offset+days+6)
	for i := 0; i < offset; i++ {
		cells = append(cells, emptyCell())
	}
	for d := 1; d <= days; d++ {
		date := first.AddDays(d - 1)
		day := d
		cells = append(cells, Cell{
			Day:     &day,
			Classes: classesOn(date, entries),
			Today:   date == today,
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, emptyCell())
	}

	weeks := make(Month, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		var w Week
		copy(w[:], cells[i:i+7])
		weeks = append(weeks, w)
	}
	return weeks, nil
}

func emptyCell() Cell {
	return Cell{Classes: []Class{}}
}

func classesOn(date civil.Date, entries []schedule.Entry) []Class {
	classes := make([]Class, 0)
	for _, e := range entries {
		if e.OccursOn(date) {
			classes = append(classes, Class{
				Subject:  e.Subject,
				Modality: e.Modality,
				Biweekly: e.IsBiweekly(),
			})
		}
	}
	return classes
}
