package calendar

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/schedule"
)

type (
	// EntrySource provides the schedule entries drawn on the calendar.
	EntrySource interface {
		Query(ctx context.Context, ordering []core.DBOrdering) ([]schedule.Entry, error)
		Today() civil.Date
	}

	ServiceInterface interface {
		Month(ctx context.Context, c Cursor) (Month, error)
		Today() civil.Date
	}

	service struct {
		entries EntrySource
	}
)

var _ ServiceInterface = (*service)(nil)

func NewService(entries EntrySource) ServiceInterface {
	return &service{entries: entries}
}

func (svc *service) Today() civil.Date {
	return svc.entries.Today()
}

func (svc *service) Month(ctx context.Context, c Cursor) (Month, error) {
	entries, err := svc.entries.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	return BuildMonth(c.Year, int(c.Month), entries, svc.Today())
}
