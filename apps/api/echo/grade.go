package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/horario/core/grade"
)

type gradeApi struct {
	service grade.ServiceInterface
}

func registerGradeAPI(g *echo.Group, svc grade.ServiceInterface) {
	api := gradeApi{service: svc}

	gg := g.Group("/grade")
	gg.GET("", api.gradeQuery)
	gg.POST("", api.gradeCreate)
	gg.GET("/summary", api.gradeSummary)
	gg.DELETE("/:id", api.gradeDestroy)
}

// Handlers

func (api *gradeApi) gradeQuery(ctx echo.Context) error {
	ord := new(Ordering)
	ord.Bind(ctx)

	entries, err := api.service.Query(ctx.Request().Context(), ord.Orderings)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *gradeApi) gradeCreate(ctx echo.Context) error {
	data := new(grade.NewEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	entry, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *gradeApi) gradeSummary(ctx echo.Context) error {
	summaries, err := api.service.Summary(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *gradeApi) gradeDestroy(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err = api.service.Delete(ctx.Request().Context(), id); err != nil {
		if errors.Cause(err) == grade.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
