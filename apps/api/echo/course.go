package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kyalo/elimu/core/course"
)

type courseApi struct {
	svc *course.Service
}

func registerCourseAPI(g *echo.Group, svc *course.Service) {
	api := courseApi{svc: svc}

	cg := g.Group("/courses")
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

// courseResponse carries the entity plus its derived fields so clients
// render without recomputing them.
type courseResponse struct {
	course.Course
	Status             course.Status `json:"status"`
	DurationInDays     int           `json:"duration_in_days"`
	InstructorsDisplay string        `json:"instructors_display"`
	StartDateDisplay   string        `json:"start_date_display"`
	EndDateDisplay     string        `json:"end_date_display"`
}

func newCourseResponse(crs course.Course) courseResponse {
	return courseResponse{
		Course:             crs,
		Status:             crs.Status(),
		DurationInDays:     crs.DurationInDays(),
		InstructorsDisplay: crs.InstructorsDisplay(),
		StartDateDisplay:   crs.FormatDate(crs.StartDate),
		EndDateDisplay:     crs.FormatDate(crs.EndDate),
	}
}

func newCourseResponseList(courses []course.Course) []courseResponse {
	res := make([]courseResponse, 0, len(courses))
	for _, crs := range courses {
		res = append(res, newCourseResponse(crs))
	}
	return res
}

// Handlers

func (api *courseApi) create(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}

	return ctx.JSON(http.StatusCreated, newCourseResponse(crs))
}

func (api *courseApi) query(ctx echo.Context) error {
	var filter course.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	courses, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering courses")
	}

	return ctx.JSON(http.StatusOK, newCourseResponseList(courses))
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	crs, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newCourseResponse(crs))
}

func (api *courseApi) update(ctx echo.Context) error {
	var data course.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newCourseResponse(crs))
}

func (api *courseApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}
