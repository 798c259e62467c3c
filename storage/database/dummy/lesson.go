package dummydb

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kyalo/elimu/core/lesson"
)

type lessonRepository struct {
	db *lessonTable
}

var _ lesson.Repository = (*lessonRepository)(nil) // interface compliance check

func NewLessonRepository(db *DB) lesson.Repository {
	return &lessonRepository{db: db.lesson}
}

func (repo *lessonRepository) query() []lesson.Lesson {
	lessons := make([]lesson.Lesson, 0, len(repo.db.table))
	for _, les := range repo.db.table {
		lessons = append(lessons, *les)
	}
	return lessons
}

func (repo *lessonRepository) CreateLesson(les lesson.Lesson) (lesson.Lesson, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if les.ID == "" {
		les.ID = uuid.New().String()
	}
	repo.db.table[les.ID] = &les
	return les, nil
}

func (repo *lessonRepository) QueryAllLessons() ([]lesson.Lesson, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *lessonRepository) GetLessonByID(id string) (lesson.Lesson, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if les, ok := repo.db.table[id]; ok {
		return *les, nil
	}
	return lesson.Lesson{}, lesson.ErrNotFound
}

func (repo *lessonRepository) FilterLessons(filter lesson.QueryFilter) ([]lesson.Lesson, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	lessons := repo.query()

	if filter.CourseID != "" {
		var filtered []lesson.Lesson
		for _, les := range lessons {
			if les.CourseID == filter.CourseID {
				filtered = append(filtered, les)
			}
		}
		lessons = filtered
	}

	if filter.Status != "" {
		var filtered []lesson.Lesson
		status := lesson.Status(filter.Status)
		for _, les := range lessons {
			if les.Status == status {
				filtered = append(filtered, les)
			}
		}
		lessons = filtered
	}

	// lessons with search keyword matching Title ?
	if filter.Search != "" {
		var filtered []lesson.Lesson
		search := strings.ToLower(filter.Search)
		for _, les := range lessons {
			if strings.Contains(strings.ToLower(les.Title), search) {
				filtered = append(filtered, les)
			}
		}
		lessons = filtered
	}

	return lessons, nil
}

func (repo *lessonRepository) UpdateLesson(les lesson.Lesson) (lesson.Lesson, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	origLes, ok := repo.db.table[les.ID]
	if !ok {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	les.CreatedAt = origLes.CreatedAt

	repo.db.table[les.ID] = &les
	return les, nil
}

func (repo *lessonRepository) DeleteLessonsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
