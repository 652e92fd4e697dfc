package inmemdb

import (
	"sync"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
)

type (
	DB struct {
		schedule *scheduleTable
		grade    *gradeTable
	}

	scheduleTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*schedule.Entry
	}

	gradeTable struct {
		mutex   sync.RWMutex
		pkCount int
		table   map[int]*grade.Entry
	}
)

func Open() *DB {
	return &DB{
		schedule: &scheduleTable{table: make(map[int]*schedule.Entry)},
		grade:    &gradeTable{table: make(map[int]*grade.Entry)},
	}
}

// compareFunc compares rows i and j on field, like cmp.Compare.
type compareFunc func(i, j int, field string) int

// lessFunc orders rows by the given orderings, then by id.
func lessFunc(ordering []core.DBOrdering, compare compareFunc, id func(i int) int) func(i, j int) bool {
	return func(i, j int) bool {
		for _, ord := range ordering {
			c := compare(i, j, ord.Field)
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return id(i) < id(j)
	}
}
