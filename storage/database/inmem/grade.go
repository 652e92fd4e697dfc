package inmemdb

import (
	"cmp"
	"context"
	"sort"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) *gradeRepository {
	return &gradeRepository{db: db.grade}
}

func (repo *gradeRepository) CreateEntry(_ context.Context, e grade.Entry) (grade.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	e.ID = repo.db.pkCount
	repo.db.table[e.ID] = &e
	return e, nil
}

func (repo *gradeRepository) QueryEntries(_ context.Context, ordering []core.DBOrdering) ([]grade.Entry, error) {
	if err := core.CheckOrderings(ordering, grade.OrderingFields...); err != nil {
		return nil, err
	}

	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]grade.Entry, 0, len(repo.db.table))
	for _, e := range repo.db.table {
		entries = append(entries, *e)
	}
	compare := func(i, j int, field string) int {
		a, b := entries[i], entries[j]
		switch field {
		case "subject":
			return cmp.Compare(a.Subject, b.Subject)
		case "grade":
			return cmp.Compare(a.Grade, b.Grade)
		case "percentage":
			return cmp.Compare(a.Percentage, b.Percentage)
		case "date":
			switch {
			case a.Date.Before(b.Date):
				return -1
			case a.Date.After(b.Date):
				return 1
			}
			return 0
		default:
			return cmp.Compare(a.ID, b.ID)
		}
	}
	sort.Slice(entries, lessFunc(ordering, compare, func(i int) int { return entries[i].ID }))
	return entries, nil
}

func (repo *gradeRepository) DeleteEntry(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return grade.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
