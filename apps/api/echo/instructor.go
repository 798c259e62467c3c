package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kyalo/elimu/core/instructor"
)

type instructorApi struct {
	svc *instructor.Service
}

func registerInstructorAPI(g *echo.Group, svc *instructor.Service) {
	api := instructorApi{svc: svc}

	ig := g.Group("/instructors")
	ig.GET("", api.query)
	ig.POST("", api.create)
	ig.GET("/:id", api.retrieve)
	ig.PUT("/:id", api.update)
	ig.DELETE("/:id", api.destroy)
}

type instructorResponse struct {
	instructor.Instructor
	Initials     string `json:"initials"`
	EmailDomain  string `json:"email_domain"`
	IsValidEmail bool   `json:"is_valid_email"` // drives the warning badge
}

func newInstructorResponse(inst instructor.Instructor) instructorResponse {
	return instructorResponse{
		Instructor:   inst,
		Initials:     inst.Initials(),
		EmailDomain:  inst.EmailDomain(),
		IsValidEmail: inst.IsValidEmail(),
	}
}

func newInstructorResponseList(instructors []instructor.Instructor) []instructorResponse {
	res := make([]instructorResponse, 0, len(instructors))
	for _, inst := range instructors {
		res = append(res, newInstructorResponse(inst))
	}
	return res
}

// Handlers

func (api *instructorApi) create(ctx echo.Context) error {
	var data instructor.NewInstructor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewInstructor")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	inst, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating instructor")
	}

	return ctx.JSON(http.StatusCreated, newInstructorResponse(inst))
}

func (api *instructorApi) query(ctx echo.Context) error {
	var filter instructor.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	instructors, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering instructors")
	}

	return ctx.JSON(http.StatusOK, newInstructorResponseList(instructors))
}

func (api *instructorApi) retrieve(ctx echo.Context) error {
	inst, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newInstructorResponse(inst))
}

func (api *instructorApi) update(ctx echo.Context) error {
	origInst, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}

	var data instructor.UpdateInstructor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateInstructor")
	}
	if err := data.Validate(origInst, api.svc); err != nil {
		return err
	}

	inst, err := api.svc.Update(origInst.ID, data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newInstructorResponse(inst))
}

func (api *instructorApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting instructor")
	}
	return ctx.NoContent(http.StatusNoContent)
}
