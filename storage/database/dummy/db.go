package dummydb

import (
	"sync"

	"github.com/kyalo/elimu/core/course"
	"github.com/kyalo/elimu/core/instructor"
	"github.com/kyalo/elimu/core/lesson"
)

type (
	DB struct {
		course     *courseTable
		lesson     *lessonTable
		instructor *instructorTable
	}

	courseTable struct {
		sync.RWMutex
		table map[string]*course.Course
	}

	lessonTable struct {
		sync.RWMutex
		table map[string]*lesson.Lesson
	}

	instructorTable struct {
		sync.RWMutex
		table map[string]*instructor.Instructor
	}
)

func Open() (*DB, error) {
	db := &DB{
		course:     &courseTable{table: make(map[string]*course.Course)},
		lesson:     &lessonTable{table: make(map[string]*lesson.Lesson)},
		instructor: &instructorTable{table: make(map[string]*instructor.Instructor)},
	}
	return db, nil
}
