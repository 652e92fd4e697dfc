package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/grade"
)

type gradeRow struct {
	ID          int         `db:"id"`
	Subject     string      `db:"subject"`
	Grade       float64     `db:"grade"`
	Percentage  float64     `db:"percentage"`
	Description null.String `db:"description"`
	Date        time.Time   `db:"date"`
}

func newGradeRow(e grade.Entry) gradeRow {
	return gradeRow{
		Subject:     e.Subject,
		Grade:       e.Grade,
		Percentage:  e.Percentage,
		Description: null.NewString(e.Description, e.Description != ""),
		Date:        e.Date.In(time.UTC),
	}
}

func (row gradeRow) entry() grade.Entry {
	return grade.Entry{
		ID:          row.ID,
		Subject:     row.Subject,
		Grade:       row.Grade,
		Percentage:  row.Percentage,
		Description: row.Description.String,
		Date:        core.DateFromTime(row.Date),
	}
}

const gradeColumns = "id, subject, grade, percentage, description, date"

type gradeRepository struct {
	exec core.DBExecutor
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(exec core.DBExecutor) *gradeRepository {
	return &gradeRepository{exec: exec}
}

func (repo gradeRepository) CreateEntry(ctx context.Context, e grade.Entry) (grade.Entry, error) {
	q := `INSERT INTO grade_entries (subject, grade, percentage, description, date)
		VALUES (:subject, :grade, :percentage, :description, :date)
		RETURNING ` + gradeColumns
	query, args, err := sqlx.Named(q, newGradeRow(e))
	if err != nil {
		return grade.Entry{}, errors.Wrap(err, "binding grade")
	}

	var row gradeRow
	if err = sqlx.GetContext(ctx, repo.exec, &row, repo.exec.Rebind(query), args...); err != nil {
		return grade.Entry{}, errors.Wrap(err, "inserting grade")
	}
	return row.entry(), nil
}

func (repo gradeRepository) QueryEntries(ctx context.Context, ordering []core.DBOrdering) ([]grade.Entry, error) {
	order, err := orderBy(ordering, grade.OrderingFields...)
	if err != nil {
		return nil, err
	}

	rows := make([]gradeRow, 0)
	if err = sqlx.SelectContext(ctx, repo.exec, &rows, "SELECT "+gradeColumns+" FROM grade_entries"+order); err != nil {
		return nil, errors.Wrap(err, "querying grades")
	}
	entries := make([]grade.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.entry())
	}
	return entries, nil
}

func (repo gradeRepository) DeleteEntry(ctx context.Context, id int) error {
	res, err := repo.exec.ExecContext(ctx, "DELETE FROM grade_entries WHERE id = $1", id)
	if err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting grade")
	} else if n == 0 {
		return grade.ErrNotFound
	}
	return nil
}
