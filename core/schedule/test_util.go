package schedule

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// NewServiceMock returns a service whose clock is frozen by now.
func NewServiceMock(repo Repository, validate *validator.Validate, loc *time.Location, now func() time.Time) ServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:     repo,
		validate: validate,
		loc:      loc,
		nowFunc:  now,
	}
}
