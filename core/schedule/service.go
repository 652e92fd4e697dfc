package schedule

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/horario/core"
)

var (
	// errors
	ErrNotFound = errors.New("schedule entry not found")
)

type (
	Repository interface {
		CreateEntry(ctx context.Context, e Entry) (Entry, error)
		// QueryEntries returns every entry, ordered by id unless orderings are given.
		QueryEntries(ctx context.Context, ordering []core.DBOrdering) ([]Entry, error)
		DeleteEntry(ctx context.Context, id int) error
	}

	ServiceInterface interface {
		Create(ctx context.Context, ne NewEntry) (Entry, error)
		Query(ctx context.Context, ordering []core.DBOrdering) ([]Entry, error)
		Delete(ctx context.Context, id int) error
		Week(ctx context.Context) (Week, error)
		Subjects(ctx context.Context, query string, limit int) ([]string, error)
		Today() civil.Date
	}

	service struct {
		repo     Repository
		validate *validator.Validate
		loc      *time.Location
		nowFunc  func() time.Time
	}
)

var _ ServiceInterface = (*service)(nil)

func NewService(repo Repository, validate *validator.Validate, conf *core.Config) ServiceInterface {
	return &service{
		repo:     repo,
		validate: validate,
		loc:      conf.Location(),
		nowFunc:  time.Now,
	}
}

// Today is the current calendar date in the configured time zone.
func (svc *service) Today() civil.Date {
	return core.Today(svc.nowFunc(), svc.loc)
}

func (svc *service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	if err := ne.Validate(svc.validate); err != nil {
		return Entry{}, err
	}
	e, err := svc.repo.CreateEntry(ctx, ne.Entry())
	if err != nil {
		return Entry{}, err
	}
	e.HasClassToday = e.OccursOn(svc.Today())
	return e, nil
}

// Query returns all entries with HasClassToday set.
func (svc *service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Entry, error) {
	if err := core.CheckOrderings(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	entries, err := svc.repo.QueryEntries(ctx, ordering)
	if err != nil {
		return nil, err
	}
	today := svc.Today()
	for i := range entries {
		entries[i].HasClassToday = entries[i].OccursOn(today)
	}
	return entries, nil
}

func (svc *service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteEntry(ctx, id)
}

func (svc *service) Week(ctx context.Context) (Week, error) {
	entries, err := svc.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	return GroupByDay(entries), nil
}

func (svc *service) Subjects(ctx context.Context, query string, limit int) ([]string, error) {
	entries, err := svc.repo.QueryEntries(ctx, nil)
	if err != nil {
		return nil, err
	}
	return SimilarSubjects(DistinctSubjects(entries), query, limit), nil
}
