package services

import (
	"errors"
	"time"

	"github.com/campushub/api/database"
	"github.com/campushub/api/model"
	"github.com/campushub/api/utils/validation"
)

// StudentService owns the student write path: email normalization and
// uniqueness, plus resolution of registered event references against the
// event store.
//
// The uniqueness check is a lookup before the write, not a database
// constraint, so two concurrent creates with the same email can both pass
// the check before either writes. That matches the documented behavior of
// this API and is not guarded against here.
type StudentService struct {
	store database.Storage
}

// NewStudentService creates a new student service
func NewStudentService(store database.Storage) *StudentService {
	return &StudentService{store: store}
}

// UpdateStudentParams carries a partial student update. Empty Name/Email
// mean "not provided". A nil RegisteredEvents leaves the stored list
// untouched; a non-nil one replaces it after full resolution.
type UpdateStudentParams struct {
	Name             string
	Email            string
	RegisteredEvents *[]string
}

// EventSummary is the inlined shape of a referenced event.
type EventSummary struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Date     time.Time           `json:"date"`
	Category model.EventCategory `json:"category"`
}

// StudentView is a student response with each resolvable referenced event
// inlined. Dangling IDs stay in the stored list but get no inline entry.
type StudentView struct {
	model.Student
	RegisteredEvents []EventSummary `json:"registeredEvents"`
}

// Create validates the email, enforces uniqueness, resolves every event
// reference, and only then writes the student. Any failure leaves the store
// untouched.
func (s *StudentService) Create(name, email string, registeredEvents []string) (*model.Student, error) {
	email = validation.NormalizeEmail(email)
	if !validation.ValidateEmail(email) {
		return nil, model.ErrInvalidEmail
	}

	if _, err := s.store.GetStudentByEmail(email); err == nil {
		return nil, model.ErrDuplicateEmail
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	if err := s.resolveReferences(registeredEvents); err != nil {
		return nil, err
	}
	if registeredEvents == nil {
		registeredEvents = []string{}
	}

	student := &model.Student{
		Name:             name,
		Email:            email,
		RegisteredEvents: registeredEvents,
	}
	if err := s.store.CreateStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update applies a partial merge onto the stored student. All checks run
// before the save; a failed check leaves the prior state intact.
func (s *StudentService) Update(id string, params UpdateStudentParams) (*model.Student, error) {
	student, err := s.store.GetStudent(id)
	if err != nil {
		return nil, err
	}

	if params.Name != "" {
		student.Name = params.Name
	}

	if params.Email != "" {
		email := validation.NormalizeEmail(params.Email)
		if !validation.ValidateEmail(email) {
			return nil, model.ErrInvalidEmail
		}
		if email != student.Email {
			other, err := s.store.GetStudentByEmail(email)
			if err == nil && other.ID != student.ID {
				return nil, model.ErrDuplicateEmail
			}
			if err != nil && !errors.Is(err, model.ErrNotFound) {
				return nil, err
			}
		}
		student.Email = email
	}

	if params.RegisteredEvents != nil {
		events := *params.RegisteredEvents
		if err := s.resolveReferences(events); err != nil {
			return nil, err
		}
		if events == nil {
			events = []string{}
		}
		student.RegisteredEvents = events
	}

	if err := s.store.SaveStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

// resolveReferences checks every candidate event ID against the event store
// and reports the first one that does not resolve.
func (s *StudentService) resolveReferences(eventIDs []string) error {
	for _, eventID := range eventIDs {
		_, err := s.store.GetEvent(eventID)
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrMalformedID) {
			return &model.UnresolvedReferenceError{EventID: eventID}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// View inlines the title, date and category of every referenced event that
// still exists. References left dangling by a later event deletion are
// skipped here while remaining in the stored list.
func (s *StudentService) View(student model.Student) (StudentView, error) {
	summaries := make([]EventSummary, 0, len(student.RegisteredEvents))
	for _, eventID := range student.RegisteredEvents {
		event, err := s.store.GetEvent(eventID)
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrMalformedID) {
			continue
		}
		if err != nil {
			return StudentView{}, err
		}
		summaries = append(summaries, EventSummary{
			ID:       event.ID,
			Title:    event.Title,
			Date:     event.Date,
			Category: event.Category,
		})
	}
	return StudentView{Student: student, RegisteredEvents: summaries}, nil
}
