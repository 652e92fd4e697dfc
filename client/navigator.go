package client

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/schedule"
)

// Navigator owns the displayed month. It is not safe for concurrent use.
type Navigator struct {
	client *Client
	cursor calendar.Cursor
}

// NewNavigator starts on the month of today.
func NewNavigator(c *Client, today civil.Date) *Navigator {
	return &Navigator{client: c, cursor: calendar.NewCursor(today)}
}

func (n *Navigator) Cursor() calendar.Cursor {
	return n.cursor
}

// Load fetches the displayed month.
func (n *Navigator) Load(ctx context.Context) (calendar.Month, error) {
	return n.client.FetchCalendar(ctx, n.cursor)
}

// Next moves to the following month and fetches it. The cursor moves even if the fetch fails.
func (n *Navigator) Next(ctx context.Context) (calendar.Month, error) {
	n.cursor = n.cursor.Next()
	return n.Load(ctx)
}

// Prev moves to the previous month and fetches it. The cursor moves even if the fetch fails.
func (n *Navigator) Prev(ctx context.Context) (calendar.Month, error) {
	n.cursor = n.cursor.Prev()
	return n.Load(ctx)
}

// BuildLocally builds the displayed month from already fetched entries, without a request.
func (n *Navigator) BuildLocally(entries []schedule.Entry, today civil.Date) (calendar.Month, error) {
	return calendar.BuildMonth(n.cursor.Year, int(n.cursor.Month), entries, today)
}
