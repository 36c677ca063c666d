package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventCategory is the closed set of event categories.
type EventCategory string

const (
	CategoryAcademic EventCategory = "Academic"
	CategorySports   EventCategory = "Sports"
	CategoryCultural EventCategory = "Cultural"
	CategoryWorkshop EventCategory = "Workshop"
	CategorySeminar  EventCategory = "Seminar"
	CategorySocial   EventCategory = "Social"
	CategoryOther    EventCategory = "Other"
)

// DefaultEventCategory is used when a create request omits the category.
const DefaultEventCategory = CategoryOther

// IsValid reports whether c is one of the known categories.
func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryAcademic, CategorySports, CategoryCultural, CategoryWorkshop,
		CategorySeminar, CategorySocial, CategoryOther:
		return true
	}
	return false
}

// Organizer is embedded into Event and has no identity of its own.
type Organizer struct {
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Department string `gorm:"type:varchar(255)" json:"department,omitempty"`
	Contact    string `gorm:"type:varchar(255)" json:"contact,omitempty"`
}

// Event represents a campus event with embedded organizer information
type Event struct {
	ID          string        `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(200);not null" json:"title"`
	Category    EventCategory `gorm:"type:event_category;not null;default:'Other';index" json:"category"`
	Date        time.Time     `gorm:"not null;index" json:"date"`
	Description string        `gorm:"type:varchar(1000)" json:"description"`
	Organizer   Organizer     `gorm:"embedded;embeddedPrefix:organizer_" json:"organizer"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID when the store has not set one.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
