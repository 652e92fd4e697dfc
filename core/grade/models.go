package grade

import (
	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/horario/core"
)

const (
	// MaxGrade is the top of the grading scale.
	MaxGrade = 5.0
	// PassingGrade is the lowest passing final grade.
	PassingGrade = 3.0
)

// OrderingFields are the fields entries can be ordered by.
var OrderingFields = []string{"id", "subject", "grade", "percentage", "date"}

type Entry struct {
	ID          int        `json:"id"`
	Subject     string     `json:"subject"`
	Grade       float64    `json:"grade"`
	Percentage  float64    `json:"percentage"`
	Description string     `json:"description"`
	Date        civil.Date `json:"date"`
}

// NewEntry contains information needed to create a new Entry.
type NewEntry struct {
	Subject     string      `json:"subject" validate:"required,notblank,max=100"`
	Grade       *core.Float `json:"grade" validate:"required,gte=0,lte=5"`
	Percentage  *core.Float `json:"percentage" validate:"required,gte=0,lte=100"`
	Description string      `json:"description" validate:"max=200"`
	Date        string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.Subject = core.CleanString(ne.Subject)
	ne.Description = core.CleanString(ne.Description)
	ne.Date = core.CleanString(ne.Date)
	return validate.Struct(ne)
}

// Entry builds the Entry to store; a missing date defaults to today.
// Validate must have been called first.
func (ne NewEntry) Entry(today civil.Date) Entry {
	e := Entry{
		Subject:     ne.Subject,
		Grade:       float64(*ne.Grade),
		Percentage:  float64(*ne.Percentage),
		Description: ne.Description,
		Date:        today,
	}
	if ne.Date != "" {
		if d, err := civil.ParseDate(ne.Date); err == nil {
			e.Date = d
		}
	}
	return e
}
