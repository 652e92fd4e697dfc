package inmemdb

import (
	"cmp"
	"context"
	"sort"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/schedule"
)

type scheduleRepository struct {
	db *scheduleTable
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(db *DB) *scheduleRepository {
	return &scheduleRepository{db: db.schedule}
}

func (repo *scheduleRepository) CreateEntry(_ context.Context, e schedule.Entry) (schedule.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	e.ID = repo.db.pkCount
	e.HasClassToday = false
	if e.StartDate != nil {
		d := *e.StartDate
		e.StartDate = &d
	}
	repo.db.table[e.ID] = &e
	return e, nil
}

func (repo *scheduleRepository) QueryEntries(_ context.Context, ordering []core.DBOrdering) ([]schedule.Entry, error) {
	if err := core.CheckOrderings(ordering, schedule.OrderingFields...); err != nil {
		return nil, err
	}

	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]schedule.Entry, 0, len(repo.db.table))
	for _, e := range repo.db.table {
		entries = append(entries, *e)
	}
	compare := func(i, j int, field string) int {
		a, b := entries[i], entries[j]
		switch field {
		case "day_of_week":
			return cmp.Compare(string(a.DayOfWeek), string(b.DayOfWeek))
		case "subject":
			return cmp.Compare(a.Subject, b.Subject)
		case "modality":
			return cmp.Compare(string(a.Modality), string(b.Modality))
		default:
			return cmp.Compare(a.ID, b.ID)
		}
	}
	sort.Slice(entries, lessFunc(ordering, compare, func(i int) int { return entries[i].ID }))
	return entries, nil
}

func (repo *scheduleRepository) DeleteEntry(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return schedule.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
