package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/schedule"
)

type scheduleRow struct {
	ID        int         `db:"id"`
	DayOfWeek string      `db:"day_of_week"`
	Subject   string      `db:"subject"`
	Group     null.String `db:"group"`
	Modality  string      `db:"modality"`
	Teacher   null.String `db:"teacher"`
	Biweekly  bool        `db:"biweekly"`
	StartDate null.Time   `db:"start_date"`
}

func newScheduleRow(e schedule.Entry) scheduleRow {
	row := scheduleRow{
		DayOfWeek: string(e.DayOfWeek),
		Subject:   e.Subject,
		Group:     null.NewString(e.Group, e.Group != ""),
		Modality:  string(e.Modality),
		Teacher:   null.NewString(e.Teacher, e.Teacher != ""),
		Biweekly:  e.Biweekly,
	}
	if e.StartDate != nil {
		row.StartDate = null.TimeFrom(e.StartDate.In(time.UTC))
	}
	return row
}

func (row scheduleRow) entry() schedule.Entry {
	e := schedule.Entry{
		ID:        row.ID,
		DayOfWeek: schedule.Weekday(row.DayOfWeek),
		Subject:   row.Subject,
		Group:     row.Group.String,
		Modality:  schedule.Modality(row.Modality),
		Teacher:   row.Teacher.String,
		Biweekly:  row.Biweekly,
	}
	if row.StartDate.Valid {
		d := core.DateFromTime(row.StartDate.Time)
		e.StartDate = &d
	}
	return e
}

const scheduleColumns = `id, day_of_week, subject, "group", modality, teacher, biweekly, start_date`

type scheduleRepository struct {
	exec core.DBExecutor
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(exec core.DBExecutor) *scheduleRepository {
	return &scheduleRepository{exec: exec}
}

func (repo scheduleRepository) CreateEntry(ctx context.Context, e schedule.Entry) (schedule.Entry, error) {
	q := `INSERT INTO schedule_entries (day_of_week, subject, "group", modality, teacher, biweekly, start_date)
		VALUES (:day_of_week, :subject, :group, :modality, :teacher, :biweekly, :start_date)
		RETURNING ` + scheduleColumns
	query, args, err := sqlx.Named(q, newScheduleRow(e))
	if err != nil {
		return schedule.Entry{}, errors.Wrap(err, "binding schedule entry")
	}

	var row scheduleRow
	if err = sqlx.GetContext(ctx, repo.exec, &row, repo.exec.Rebind(query), args...); err != nil {
		return schedule.Entry{}, errors.Wrap(err, "inserting schedule entry")
	}
	return row.entry(), nil
}

func (repo scheduleRepository) QueryEntries(ctx context.Context, ordering []core.DBOrdering) ([]schedule.Entry, error) {
	order, err := orderBy(ordering, schedule.OrderingFields...)
	if err != nil {
		return nil, err
	}

	rows := make([]scheduleRow, 0)
	if err = sqlx.SelectContext(ctx, repo.exec, &rows, "SELECT "+scheduleColumns+" FROM schedule_entries"+order); err != nil {
		return nil, errors.Wrap(err, "querying schedule entries")
	}
	entries := make([]schedule.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.entry())
	}
	return entries, nil
}

func (repo scheduleRepository) DeleteEntry(ctx context.Context, id int) error {
	res, err := repo.exec.ExecContext(ctx, "DELETE FROM schedule_entries WHERE id = $1", id)
	if err != nil {
		return errors.Wrap(err, "deleting schedule entry")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting schedule entry")
	} else if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
