package schedule

import (
	"cloud.google.com/go/civil"

	"github.com/trezcool/horario/core"
)

// OccursOn reports whether the class takes place on d.
//
// Regular classes happen on every date matching their weekday. Biweekly classes also need
// d >= StartDate and (d - StartDate) to be a multiple of BiweeklyInterval days; without a
// start date they never occur.
func (e Entry) OccursOn(d civil.Date) bool {
	wd, ok := e.DayOfWeek.Weekday()
	if !ok || core.Weekday(d) != wd {
		return false
	}
	if !e.IsBiweekly() {
		return true
	}
	if e.StartDate == nil {
		return false
	}
	days := d.DaysSince(*e.StartDate)
	return days >= 0 && days%BiweeklyInterval == 0
}
