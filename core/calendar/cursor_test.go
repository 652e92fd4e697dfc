package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	tests := []struct {
		name     string
		cursor   Cursor
		wantNext Cursor
		wantPrev Cursor
	}{
		{name: "mid year", cursor: Cursor{2024, time.June}, wantNext: Cursor{2024, time.July}, wantPrev: Cursor{2024, time.May}},
		{name: "december", cursor: Cursor{2024, time.December}, wantNext: Cursor{2025, time.January}, wantPrev: Cursor{2024, time.November}},
		{name: "january", cursor: Cursor{2024, time.January}, wantNext: Cursor{2024, time.February}, wantPrev: Cursor{2023, time.December}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNext, tt.cursor.Next())
			assert.Equal(t, tt.wantPrev, tt.cursor.Prev())
			assert.Equal(t, tt.cursor, tt.cursor.Next().Prev())
			assert.Equal(t, tt.cursor, tt.cursor.Prev().Next())
		})
	}

	c := NewCursor(date(2024, 2, 29))
	assert.Equal(t, Cursor{2024, time.February}, c)
	assert.Equal(t, "2024-02", c.String())

	for i := 0; i < 12; i++ {
		c = c.Next()
	}
	assert.Equal(t, Cursor{2025, time.February}, c)
}
