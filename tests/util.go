package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
)

// Now is the frozen clock of the test services: Monday 2024-01-15, 10:00 in Bogotá.
func Now() time.Time {
	return time.Date(2024, time.January, 15, 15, 0, 0, 0, time.UTC)
}

// Location is the time zone of the test services.
func Location(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("Location() failed: %v", err)
	}
	return loc
}

// NewValidator returns a validator with every custom rule and translation registered on translator.
func NewValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)
	return validate
}

func CreateScheduleEntry(
	t *testing.T,
	repo schedule.Repository,
	day schedule.Weekday,
	subject string,
	modality schedule.Modality,
	startDate ...civil.Date,
) schedule.Entry {
	e := schedule.Entry{
		DayOfWeek: day,
		Subject:   subject,
		Modality:  modality,
		Biweekly:  modality == schedule.ModalityBiweekly,
	}
	if len(startDate) > 0 {
		e.StartDate = &startDate[0]
	}
	e, err := repo.CreateEntry(context.Background(), e)
	if err != nil {
		t.Fatalf("CreateScheduleEntry() failed: %v", err)
	}
	return e
}

func CreateGrade(
	t *testing.T,
	repo grade.Repository,
	subject string,
	grd, percentage float64,
	date ...civil.Date,
) grade.Entry {
	e := grade.Entry{
		Subject:    subject,
		Grade:      grd,
		Percentage: percentage,
		Date:       core.Today(Now(), time.UTC),
	}
	if len(date) > 0 {
		e.Date = date[0]
	}
	e, err := repo.CreateEntry(context.Background(), e)
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	return e
}
