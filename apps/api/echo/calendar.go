package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
)

type calendarApi struct {
	service calendar.ServiceInterface
}

func registerCalendarAPI(g *echo.Group, svc calendar.ServiceInterface) {
	api := calendarApi{service: svc}
	g.GET("/calendar", api.calendarMonth)
}

// calendarMonth serves the weeks of `?year=&month=`, the current month by default.
func (api *calendarApi) calendarMonth(ctx echo.Context) error {
	cursor := calendar.NewCursor(api.service.Today())

	year, err := intQueryParam(ctx, "year", cursor.Year)
	if err != nil {
		return err
	}
	month, err := intQueryParam(ctx, "month", int(cursor.Month))
	if err != nil {
		return err
	}

	weeks, err := api.service.Month(ctx.Request().Context(), calendar.Cursor{Year: year, Month: time.Month(month)})
	if err != nil {
		if errors.Cause(err) == calendar.ErrInvalidMonth {
			return core.NewValidationError(nil, core.FieldError{Field: "month", Error: err.Error()})
		}
		return err
	}
	return ctx.JSON(http.StatusOK, weeks)
}
