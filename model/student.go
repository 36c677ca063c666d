package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Student represents a student with their registered events.
//
// RegisteredEvents holds ordered Event IDs as weak references: entries are
// resolved against the event store when the student is written, and deleting
// an Event later leaves a dangling ID behind rather than cascading.
//
// Email uniqueness is checked by StudentService before the write; there is no
// unique index backing it, so two concurrent creates can race past the check.
type Student struct {
	ID               string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string                      `gorm:"type:varchar(100);not null" json:"name"`
	Email            string                      `gorm:"type:varchar(254);not null;index" json:"email"`
	RegisteredEvents datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"registeredEvents"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID when the store has not set one.
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
