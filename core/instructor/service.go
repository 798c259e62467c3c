package instructor

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kyalo/elimu/core"
)

var (
	// errors
	ErrNotFound    = errors.New("instructor not found")
	ErrEmailExists = errors.New("an instructor with this email already exists")
)

type (
	Repository interface {
		// CheckEmailUniqueness reports ErrEmailExists when another instructor
		// (not in excludedInstructors) already holds the email.
		CheckEmailUniqueness(email string, excludedInstructors ...Instructor) error
		CreateInstructor(inst Instructor) (Instructor, error)
		QueryAllInstructors() ([]Instructor, error)
		GetInstructorByID(id string) (Instructor, error)
		// FilterInstructors keeps instructors matching QueryFilter.Search
		// (see Instructor.MatchesSearch).
		FilterInstructors(filter QueryFilter) ([]Instructor, error)
		UpdateInstructor(inst Instructor) (Instructor, error)
		DeleteInstructorsByID(ids ...string) error
	}

	Service struct {
		repo     Repository
		mailSvc  core.EmailService
		collator *collate.Collator
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{
		repo:     repo,
		mailSvc:  mailSvc,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

func (svc *Service) checkUniqueness(email string, exclInstructors ...Instructor) error {
	if err := svc.repo.CheckEmailUniqueness(email, exclInstructors...); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ni NewInstructor) (Instructor, error) {
	now := nowFunc().UTC()
	inst := Instructor{
		Name:      ni.Name,
		Email:     ni.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	inst, err := svc.repo.CreateInstructor(inst)
	if err != nil {
		return Instructor{}, err
	}
	svc.sendWelcomeMail(inst)
	return inst, nil
}

func (svc *Service) QueryAll() ([]Instructor, error) {
	instructors, err := svc.repo.QueryAllInstructors()
	if err != nil {
		return nil, err
	}
	svc.sortByName(instructors)
	return instructors, nil
}

func (svc *Service) GetByID(id string) (Instructor, error) {
	return svc.repo.GetInstructorByID(id)
}

// Filter returns matching instructors in stable, locale-aware name order.
func (svc *Service) Filter(filter QueryFilter) ([]Instructor, error) {
	filter.Clean()
	var instructors []Instructor
	var err error
	if filter.IsEmpty() {
		instructors, err = svc.repo.QueryAllInstructors()
	} else {
		instructors, err = svc.repo.FilterInstructors(filter)
	}
	if err != nil {
		return nil, err
	}
	svc.sortByName(instructors)
	return instructors, nil
}

// Update replaces the stored instructor wholesale; the id (and original CreatedAt) are preserved.
func (svc *Service) Update(id string, ui UpdateInstructor) (Instructor, error) {
	inst := Instructor{
		ID:        id,
		Name:      ui.Name,
		Email:     ui.Email,
		UpdatedAt: nowFunc().UTC(),
	}
	return svc.repo.UpdateInstructor(inst)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteInstructorsByID(ids...)
}

func (svc *Service) sortByName(instructors []Instructor) {
	sort.SliceStable(instructors, func(i, j int) bool {
		return svc.collator.CompareString(instructors[i].Name, instructors[j].Name) < 0
	})
}

func (svc *Service) sendWelcomeMail(inst Instructor) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: inst.Name, Address: inst.Email}},
		Subject: "Welcome aboard",
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nYou have been added as an instructor on %s. "+
				"Course leads can now assign you to their courses.\n",
			inst.Name, core.Conf.AppName,
		),
	})
}
