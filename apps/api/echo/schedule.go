package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/horario/core/schedule"
)

type scheduleApi struct {
	service schedule.ServiceInterface
}

func registerScheduleAPI(g *echo.Group, svc schedule.ServiceInterface) {
	api := scheduleApi{service: svc}

	sg := g.Group("/schedule")
	sg.GET("", api.scheduleQuery)
	sg.POST("", api.scheduleCreate)
	sg.GET("/week", api.scheduleWeek)
	sg.DELETE("/:id", api.scheduleDestroy)

	g.GET("/subjects", api.subjectQuery)
}

// Handlers

func (api *scheduleApi) scheduleQuery(ctx echo.Context) error {
	ord := new(Ordering)
	ord.Bind(ctx)

	entries, err := api.service.Query(ctx.Request().Context(), ord.Orderings)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *scheduleApi) scheduleCreate(ctx echo.Context) error {
	data := new(schedule.NewEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	entry, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *scheduleApi) scheduleWeek(ctx echo.Context) error {
	week, err := api.service.Week(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, week)
}

func (api *scheduleApi) scheduleDestroy(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err = api.service.Delete(ctx.Request().Context(), id); err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *scheduleApi) subjectQuery(ctx echo.Context) error {
	limit, err := intQueryParam(ctx, "limit", 0)
	if err != nil {
		return err
	}

	subjects, err := api.service.Subjects(ctx.Request().Context(), strings.TrimSpace(ctx.QueryParam("q")), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subjects)
}
