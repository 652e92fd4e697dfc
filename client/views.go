package client

import (
	"context"

	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
)

// ScheduleView is the weekly timetable and the subjects offered by the grade form.
type ScheduleView struct {
	Week     schedule.Week
	Subjects []string
}

func BuildScheduleView(entries []schedule.Entry) ScheduleView {
	return ScheduleView{
		Week:     schedule.GroupByDay(entries),
		Subjects: schedule.DistinctSubjects(entries),
	}
}

// GradesView lists the grades of every subject with its final grade.
type GradesView struct {
	Subjects grade.Summaries
}

// Failing returns the subjects whose final grade is below grade.PassingGrade.
func (v GradesView) Failing() []string {
	failing := make([]string, 0)
	for _, s := range v.Subjects {
		if !s.Passing(grade.PassingGrade) {
			failing = append(failing, s.Subject)
		}
	}
	return failing
}

func BuildGradesView(entries []grade.Entry) GradesView {
	return GradesView{Subjects: grade.AggregateBySubject(entries)}
}

// LoadScheduleView fetches the schedule and builds its view.
func (c *Client) LoadScheduleView(ctx context.Context) (ScheduleView, error) {
	entries, err := c.FetchSchedule(ctx)
	if err != nil {
		return ScheduleView{}, err
	}
	return BuildScheduleView(entries), nil
}

// LoadGradesView fetches the grades and builds their view.
func (c *Client) LoadGradesView(ctx context.Context) (GradesView, error) {
	entries, err := c.FetchGrades(ctx)
	if err != nil {
		return GradesView{}, err
	}
	return BuildGradesView(entries), nil
}
