package database

import (
	"time"

	"github.com/campushub/api/model"
	"github.com/google/uuid"
)

// checkID classifies a request identifier before any lookup so callers can
// distinguish a malformed identifier (400) from an absent record (404).
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrMalformedID
	}
	return nil
}

// EventFilter narrows ListEvents. Zero values mean "no filter".
type EventFilter struct {
	Category string
	DateFrom *time.Time
}

// ResourceFilter narrows ListResources. Zero values mean "no filter".
type ResourceFilter struct {
	Type         string
	Availability string
}

// Storage defines the interface that all database implementations must
// satisfy. Lookups with an identifier that does not parse as a UUID return
// model.ErrMalformedID; a well-formed identifier with no record behind it
// returns model.ErrNotFound.
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// Events, listed by date ascending
	ListEvents(filter EventFilter) ([]model.Event, error)
	GetEvent(id string) (*model.Event, error)
	CreateEvent(event *model.Event) error
	SaveEvent(event *model.Event) error
	DeleteEvent(id string) error

	// Students, listed in insertion order
	ListStudents() ([]model.Student, error)
	GetStudent(id string) (*model.Student, error)
	GetStudentByEmail(email string) (*model.Student, error)
	CreateStudent(student *model.Student) error
	SaveStudent(student *model.Student) error
	DeleteStudent(id string) error

	// Resources, listed by name ascending
	ListResources(filter ResourceFilter) ([]model.Resource, error)
	GetResource(id string) (*model.Resource, error)
	CreateResource(resource *model.Resource) error
	SaveResource(resource *model.Resource) error
	DeleteResource(id string) error
}
