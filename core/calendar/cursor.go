package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Cursor is the month being displayed. It is a value: navigation returns a new Cursor.
type Cursor struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func NewCursor(today civil.Date) Cursor {
	return Cursor{Year: today.Year, Month: today.Month}
}

func (c Cursor) Next() Cursor {
	if c.Month == time.December {
		return Cursor{Year: c.Year + 1, Month: time.January}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

func (c Cursor) Prev() Cursor {
	if c.Month == time.January {
		return Cursor{Year: c.Year - 1, Month: time.December}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

func (c Cursor) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}
