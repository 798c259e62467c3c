package dashboard

import (
	"github.com/kyalo/elimu/core/course"
	"github.com/kyalo/elimu/core/instructor"
	"github.com/kyalo/elimu/core/lesson"
)

type (
	// Stats is the aggregate snapshot the dashboard cards render.
	Stats struct {
		TotalCourses     int                   `json:"total_courses"`
		TotalLessons     int                   `json:"total_lessons"`
		TotalInstructors int                   `json:"total_instructors"`
		CoursesByStatus  map[course.Status]int `json:"courses_by_status"`
		LessonsByStatus  map[lesson.Status]int `json:"lessons_by_status"`
	}

	Service struct {
		courseRepo     course.Repository
		lessonRepo     lesson.Repository
		instructorRepo instructor.Repository
	}
)

func NewService(courseRepo course.Repository, lessonRepo lesson.Repository, instructorRepo instructor.Repository) *Service {
	return &Service{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		instructorRepo: instructorRepo,
	}
}

// Stats recomputes all counts on every call; course statuses are re-derived
// from the wall clock so the snapshot drifts with time on its own.
func (svc *Service) Stats() (Stats, error) {
	stats := Stats{
		CoursesByStatus: map[course.Status]int{
			course.StatusUpcoming: 0,
			course.StatusActive:   0,
			course.StatusEnded:    0,
		},
		LessonsByStatus: map[lesson.Status]int{
			lesson.StatusDraft:     0,
			lesson.StatusPublished: 0,
			lesson.StatusArchived:  0,
		},
	}

	courses, err := svc.courseRepo.QueryAllCourses()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalCourses = len(courses)
	for i := range courses {
		stats.CoursesByStatus[courses[i].Status()]++
	}

	lessons, err := svc.lessonRepo.QueryAllLessons()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalLessons = len(lessons)
	for i := range lessons {
		stats.LessonsByStatus[lessons[i].Status]++
	}

	instructors, err := svc.instructorRepo.QueryAllInstructors()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalInstructors = len(instructors)

	return stats, nil
}
