package schedule

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/horario/core"
)

// Weekday is a day a class can be scheduled on.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays lists the class days in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdays = map[Weekday]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// Valid reports whether wd is one of the six class days (case-sensitive).
func (wd Weekday) Valid() bool {
	_, ok := weekdays[wd]
	return ok
}

// Weekday maps wd onto time.Weekday; ok is false for unrecognized values.
func (wd Weekday) Weekday() (day time.Weekday, ok bool) {
	day, ok = weekdays[wd]
	return day, ok
}

// Modality is the delivery mode of a class.
type Modality string

const (
	ModalityInPerson Modality = "Presencial"
	ModalityVirtual  Modality = "Virtual"
	ModalityBiweekly Modality = "Cada 15 días"
)

var Modalities = []Modality{ModalityInPerson, ModalityVirtual, ModalityBiweekly}

func (m Modality) Valid() bool {
	switch m {
	case ModalityInPerson, ModalityVirtual, ModalityBiweekly:
		return true
	default:
		return false
	}
}

// BiweeklyInterval is the number of days between two occurrences of a biweekly class.
const BiweeklyInterval = 14

// OrderingFields are the fields entries can be ordered by.
var OrderingFields = []string{"id", "day_of_week", "subject", "modality"}

type Entry struct {
	ID            int         `json:"id"`
	DayOfWeek     Weekday     `json:"day_of_week"`
	Subject       string      `json:"subject"`
	Group         string      `json:"group,omitempty"`
	Modality      Modality    `json:"modality"`
	Teacher       string      `json:"teacher,omitempty"`
	Biweekly      bool        `json:"biweekly"`
	StartDate     *civil.Date `json:"start_date"`
	HasClassToday bool        `json:"has_class_today"`
}

// IsBiweekly reports whether the class only happens every BiweeklyInterval days.
func (e Entry) IsBiweekly() bool {
	return e.Biweekly || e.Modality == ModalityBiweekly
}

// NewEntry contains information needed to create a new Entry.
type NewEntry struct {
	DayOfWeek Weekday  `json:"day_of_week" validate:"required,weekday"`
	Subject   string   `json:"subject" validate:"required,notblank,max=100"`
	Group     string   `json:"group" validate:"max=50"`
	Modality  Modality `json:"modality" validate:"required,modality"`
	Teacher   string   `json:"teacher" validate:"max=100"`
	Biweekly  *bool    `json:"biweekly"`
	StartDate string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.DayOfWeek = Weekday(core.CleanString(string(ne.DayOfWeek), true /* lower */))
	ne.Subject = core.CleanString(ne.Subject)
	ne.Group = core.CleanString(ne.Group)
	ne.Modality = Modality(core.CleanString(string(ne.Modality)))
	ne.Teacher = core.CleanString(ne.Teacher)
	ne.StartDate = core.CleanString(ne.StartDate)
	return validate.Struct(ne)
}

// Entry builds the Entry to store. The start date is only kept for biweekly classes.
// Validate must have been called first.
func (ne NewEntry) Entry() Entry {
	e := Entry{
		DayOfWeek: ne.DayOfWeek,
		Subject:   ne.Subject,
		Group:     ne.Group,
		Modality:  ne.Modality,
		Teacher:   ne.Teacher,
		Biweekly:  ne.Modality == ModalityBiweekly,
	}
	if e.Biweekly && ne.StartDate != "" {
		if d, err := civil.ParseDate(ne.StartDate); err == nil {
			e.StartDate = &d
		}
	}
	return e
}
