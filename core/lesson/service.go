package lesson

import (
	"errors"

	"github.com/kyalo/elimu/core"
)

// ErrNotFound is returned when no lesson matches the given id.
var ErrNotFound = errors.New("lesson not found")

type (
	Repository interface {
		CreateLesson(les Lesson) (Lesson, error)
		QueryAllLessons() ([]Lesson, error)
		GetLessonByID(id string) (Lesson, error)
		// FilterLessons applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on Lesson.Title.
		FilterLessons(filter QueryFilter) ([]Lesson, error)
		UpdateLesson(les Lesson) (Lesson, error)
		DeleteLessonsByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nl NewLesson) (Lesson, error) {
	now := nowFunc().UTC()
	les := Lesson{
		Title:       nl.Title,
		Status:      ParseStatus(nl.Status),
		PublishDate: nl.PublishDate,
		VideoURL:    nl.VideoURL,
		CourseID:    nl.CourseID,
		CreatorID:   nl.CreatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateLesson(les)
}

func (svc *Service) QueryAll() ([]Lesson, error) {
	return svc.repo.QueryAllLessons()
}

func (svc *Service) GetByID(id string) (Lesson, error) {
	return svc.repo.GetLessonByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Lesson, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllLessons()
	}
	return svc.repo.FilterLessons(filter)
}

// Update replaces the stored lesson wholesale; the id (and original CreatedAt) are preserved.
func (svc *Service) Update(id string, ul UpdateLesson) (Lesson, error) {
	les := Lesson{
		ID:          id,
		Title:       ul.Title,
		Status:      ParseStatus(ul.Status),
		PublishDate: ul.PublishDate,
		VideoURL:    ul.VideoURL,
		CourseID:    ul.CourseID,
		CreatorID:   ul.CreatorID,
		UpdatedAt:   nowFunc().UTC(),
	}
	return svc.repo.UpdateLesson(les)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteLessonsByID(ids...)
}

// Publish transitions the lesson into published. An empty date means "today".
func (svc *Service) Publish(id, date string) (Lesson, error) {
	les, err := svc.repo.GetLessonByID(id)
	if err != nil {
		return Lesson{}, err
	}
	if date = core.CleanString(date); date != "" {
		les = les.Publish(date)
	} else {
		les = les.Publish()
	}
	return svc.repo.UpdateLesson(les)
}

// Archive transitions the lesson into archived; PublishDate is untouched.
func (svc *Service) Archive(id string) (Lesson, error) {
	les, err := svc.repo.GetLessonByID(id)
	if err != nil {
		return Lesson{}, err
	}
	return svc.repo.UpdateLesson(les.Archive())
}

// MakeDraft reverts the lesson to draft; PublishDate is untouched.
func (svc *Service) MakeDraft(id string) (Lesson, error) {
	les, err := svc.repo.GetLessonByID(id)
	if err != nil {
		return Lesson{}, err
	}
	return svc.repo.UpdateLesson(les.MakeDraft())
}

// SetStatus applies the generic transition; unrecognized statuses default to draft.
func (svc *Service) SetStatus(id, status string) (Lesson, error) {
	les, err := svc.repo.GetLessonByID(id)
	if err != nil {
		return Lesson{}, err
	}
	return svc.repo.UpdateLesson(les.UpdateStatus(ParseStatus(status)))
}
