package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kyalo/elimu/core"
	"github.com/kyalo/elimu/core/lesson"
)

type lessonApi struct {
	svc *lesson.Service
}

func registerLessonAPI(g *echo.Group, svc *lesson.Service) {
	api := lessonApi{svc: svc}

	lg := g.Group("/lessons")
	lg.GET("", api.query)
	lg.POST("", api.create)
	lg.GET("/:id", api.retrieve)
	lg.PUT("/:id", api.update)
	lg.DELETE("/:id", api.destroy)

	// status transitions
	lg.POST("/:id/publish", api.publish)
	lg.POST("/:id/archive", api.archive)
	lg.POST("/:id/draft", api.makeDraft)
	lg.PUT("/:id/status", api.setStatus)
}

type lessonResponse struct {
	lesson.Lesson
	IsScheduled        bool   `json:"is_scheduled"`
	VideoFileName      string `json:"video_file_name"`
	PublishDateDisplay string `json:"publish_date_display"`
}

func newLessonResponse(les lesson.Lesson) lessonResponse {
	return lessonResponse{
		Lesson:             les,
		IsScheduled:        les.IsScheduled(),
		VideoFileName:      les.VideoFileName(),
		PublishDateDisplay: les.FormattedPublishDate(),
	}
}

func newLessonResponseList(lessons []lesson.Lesson) []lessonResponse {
	res := make([]lessonResponse, 0, len(lessons))
	for _, les := range lessons {
		res = append(res, newLessonResponse(les))
	}
	return res
}

// PublishRequest optionally schedules the publish; an empty date means "today".
type PublishRequest struct {
	PublishDate string `json:"publish_date" validate:"dateonly"`
}

func (pr *PublishRequest) Validate() error {
	pr.PublishDate = core.CleanString(pr.PublishDate)
	return core.Validate.Struct(pr)
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (sr *StatusRequest) Validate() error {
	sr.Status = core.CleanString(sr.Status, true /* lower */)
	return core.Validate.Struct(sr)
}

// Handlers

func (api *lessonApi) create(ctx echo.Context) error {
	var data lesson.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	les, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating lesson")
	}

	return ctx.JSON(http.StatusCreated, newLessonResponse(les))
}

func (api *lessonApi) query(ctx echo.Context) error {
	var filter lesson.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	lessons, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering lessons")
	}

	return ctx.JSON(http.StatusOK, newLessonResponseList(lessons))
}

func (api *lessonApi) retrieve(ctx echo.Context) error {
	les, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newLessonResponse(les))
}

func (api *lessonApi) update(ctx echo.Context) error {
	var data lesson.UpdateLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateLesson")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	les, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newLessonResponse(les))
}

func (api *lessonApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting lesson")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *lessonApi) publish(ctx echo.Context) error {
	var data PublishRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PublishRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	les, err := api.svc.Publish(ctx.Param("id"), data.PublishDate)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newLessonResponse(les))
}

func (api *lessonApi) archive(ctx echo.Context) error {
	les, err := api.svc.Archive(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newLessonResponse(les))
}

func (api *lessonApi) makeDraft(ctx echo.Context) error {
	les, err := api.svc.MakeDraft(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newLessonResponse(les))
}

func (api *lessonApi) setStatus(ctx echo.Context) error {
	var data StatusRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StatusRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	les, err := api.svc.SetStatus(ctx.Param("id"), data.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newLessonResponse(les))
}
