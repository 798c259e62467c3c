package dummydb

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kyalo/elimu/core/instructor"
)

type instructorRepository struct {
	db *instructorTable
}

var _ instructor.Repository = (*instructorRepository)(nil) // interface compliance check

func NewInstructorRepository(db *DB) instructor.Repository {
	return &instructorRepository{db: db.instructor}
}

func (repo *instructorRepository) query() []instructor.Instructor {
	instructors := make([]instructor.Instructor, 0, len(repo.db.table))
	for _, inst := range repo.db.table {
		instructors = append(instructors, *inst)
	}
	return instructors
}

func (repo *instructorRepository) CheckEmailUniqueness(email string, excludedInstructors ...instructor.Instructor) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, inst := range repo.query() {
		if strings.ToLower(inst.Email) == email && !isExcluded(inst, excludedInstructors) {
			return instructor.ErrEmailExists
		}
	}
	return nil
}

func (repo *instructorRepository) CreateInstructor(inst instructor.Instructor) (instructor.Instructor, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if inst.ID == "" {
		inst.ID = uuid.New().String()
	}
	repo.db.table[inst.ID] = &inst
	return inst, nil
}

func (repo *instructorRepository) QueryAllInstructors() ([]instructor.Instructor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *instructorRepository) GetInstructorByID(id string) (instructor.Instructor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if inst, ok := repo.db.table[id]; ok {
		return *inst, nil
	}
	return instructor.Instructor{}, instructor.ErrNotFound
}

func (repo *instructorRepository) FilterInstructors(filter instructor.QueryFilter) ([]instructor.Instructor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	instructors := repo.query()

	if filter.Search != "" {
		var filtered []instructor.Instructor
		for _, inst := range instructors {
			if inst.MatchesSearch(filter.Search) {
				filtered = append(filtered, inst)
			}
		}
		instructors = filtered
	}

	return instructors, nil
}

func (repo *instructorRepository) UpdateInstructor(inst instructor.Instructor) (instructor.Instructor, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	origInst, ok := repo.db.table[inst.ID]
	if !ok {
		return instructor.Instructor{}, instructor.ErrNotFound
	}
	inst.CreatedAt = origInst.CreatedAt

	repo.db.table[inst.ID] = &inst
	return inst, nil
}

func (repo *instructorRepository) DeleteInstructorsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

func isExcluded(inst instructor.Instructor, excludedInstructors []instructor.Instructor) bool {
	for _, excl := range excludedInstructors {
		if excl.ID == inst.ID {
			return true
		}
	}
	return false
}
