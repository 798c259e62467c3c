package dummydb

import (
	"time"

	"github.com/kyalo/elimu/core/course"
	"github.com/kyalo/elimu/core/instructor"
	"github.com/kyalo/elimu/core/lesson"
)

// Seed loads the demo catalog into the DB. Meant for local runs and tests.
func Seed(db *DB) error {
	now := time.Now().UTC()

	courses := []course.Course{
		{
			ID:   "course_001",
			Name: "Introduction to React Development",
			Description: "Learn the fundamentals of React including components, props, state, and hooks. " +
				"This comprehensive course will take you from beginner to intermediate level.",
			StartDate:   "2024-02-01",
			EndDate:     "2024-03-15",
			CreatorID:   "user_123",
			Instructors: []string{"John Smith", "Sarah Johnson"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:   "course_002",
			Name: "Advanced JavaScript Patterns",
			Description: "Master advanced JavaScript concepts and design patterns for professional development. " +
				"Dive deep into closures, prototypes, and modern ES6+ features.",
			StartDate:   "2024-01-15",
			EndDate:     "2024-02-28",
			CreatorID:   "user_456",
			Instructors: []string{"Mike Wilson"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:   "course_003",
			Name: "Full-Stack Web Development",
			Description: "Complete full-stack development course covering frontend and backend technologies " +
				"including Node.js, Express, and database integration.",
			StartDate:   "2024-03-01",
			EndDate:     "2024-05-30",
			CreatorID:   "user_789",
			Instructors: []string{"Emily Davis", "Robert Chen", "Lisa Anderson"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	lessons := []lesson.Lesson{
		{
			Title:       "Introduction to React Components",
			Status:      lesson.StatusPublished,
			PublishDate: "2024-01-15",
			VideoURL:    "https://example.com/videos/react-components-intro.mp4",
			CourseID:    "course_001",
			CreatorID:   "user_123",
		},
		{
			Title:       "Understanding JSX Syntax",
			Status:      lesson.StatusPublished,
			PublishDate: "2024-01-20",
			VideoURL:    "https://example.com/videos/jsx-syntax.mp4",
			CourseID:    "course_001",
			CreatorID:   "user_123",
		},
		{
			Title:     "React Hooks Deep Dive",
			Status:    lesson.StatusDraft,
			VideoURL:  "https://example.com/videos/react-hooks.mp4",
			CourseID:  "course_001",
			CreatorID: "user_456",
		},
		{
			Title:       "State Management with Redux",
			Status:      lesson.StatusPublished,
			PublishDate: "2024-02-01",
			VideoURL:    "https://example.com/videos/redux-basics.mp4",
			CourseID:    "course_002",
			CreatorID:   "user_789",
		},
		{
			Title:       "Advanced Component Patterns",
			Status:      lesson.StatusArchived,
			PublishDate: "2023-12-01",
			VideoURL:    "https://example.com/videos/advanced-patterns.mp4",
			CourseID:    "course_001",
			CreatorID:   "user_123",
		},
	}

	instructors := []instructor.Instructor{
		{Name: "John Smith", Email: "john.smith@example.com"},
		{Name: "Sarah Johnson", Email: "sarah.johnson@university.edu"},
		{Name: "Mike Wilson", Email: "mike.wilson@techcorp.com"},
		{Name: "Emily Davis", Email: "emily.davis@academy.org"},
		{Name: "Robert Chen", Email: "robert.chen@institute.edu"},
	}

	courseRepo := NewCourseRepository(db)
	for _, crs := range courses {
		if _, err := courseRepo.CreateCourse(crs); err != nil {
			return err
		}
	}

	lessonRepo := NewLessonRepository(db)
	for _, les := range lessons {
		les.CreatedAt, les.UpdatedAt = now, now
		if _, err := lessonRepo.CreateLesson(les); err != nil {
			return err
		}
	}

	instructorRepo := NewInstructorRepository(db)
	for _, inst := range instructors {
		inst.CreatedAt, inst.UpdatedAt = now, now
		if _, err := instructorRepo.CreateInstructor(inst); err != nil {
			return err
		}
	}

	return nil
}
