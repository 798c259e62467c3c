package course

import "errors"

// ErrNotFound is returned when no course matches the given id.
var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		CreateCourse(crs Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of Course.Name or Course.Description.
		FilterCourses(filter QueryFilter) ([]Course, error)
		UpdateCourse(crs Course) (Course, error)
		DeleteCoursesByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	now := nowFunc().UTC()
	crs := Course{
		Name:        nc.Name,
		Description: nc.Description,
		StartDate:   nc.StartDate,
		EndDate:     nc.EndDate,
		CreatorID:   nc.CreatorID,
		Instructors: nc.Instructors,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateCourse(crs)
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Course, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllCourses()
	}
	return svc.repo.FilterCourses(filter)
}

// Update replaces the stored course wholesale; the id (and original CreatedAt) are preserved.
func (svc *Service) Update(id string, uc UpdateCourse) (Course, error) {
	crs := Course{
		ID:          id,
		Name:        uc.Name,
		Description: uc.Description,
		StartDate:   uc.StartDate,
		EndDate:     uc.EndDate,
		CreatorID:   uc.CreatorID,
		Instructors: uc.Instructors,
		UpdatedAt:   nowFunc().UTC(),
	}
	return svc.repo.UpdateCourse(crs)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteCoursesByID(ids...)
}
