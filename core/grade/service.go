package grade

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/horario/core"
)

var (
	// errors
	ErrNotFound = errors.New("grade not found")
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
		Summary(ctx context.Context) (Summaries, error)
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

func (svc *service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	if err := ne.Validate(svc.validate); err != nil {
		return Entry{}, err
	}
	return svc.repo.CreateEntry(ctx, ne.Entry(core.Today(svc.nowFunc(), svc.loc)))
}

func (svc *service) Query(ctx context.Context, ordering []core.DBOrdering) ([]Entry, error) {
	if err := core.CheckOrderings(ordering, OrderingFields...); err != nil {
		return nil, err
	}
	return svc.repo.QueryEntries(ctx, ordering)
}

func (svc *service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteEntry(ctx, id)
}

func (svc *service) Summary(ctx context.Context) (Summaries, error) {
	entries, err := svc.repo.QueryEntries(ctx, nil)
	if err != nil {
		return nil, err
	}
	return AggregateBySubject(entries), nil
}
