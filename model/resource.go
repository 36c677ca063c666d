package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceType is the closed set of resource kinds.
type ResourceType string

const (
	TypeEquipment  ResourceType = "Equipment"
	TypeRoom       ResourceType = "Room"
	TypeFacility   ResourceType = "Facility"
	TypeVehicle    ResourceType = "Vehicle"
	TypeTechnology ResourceType = "Technology"
	TypeOther      ResourceType = "Other"
)

// DefaultResourceType is used when a create request omits the type.
const DefaultResourceType = TypeOther

// IsValid reports whether t is one of the known resource types.
func (t ResourceType) IsValid() bool {
	switch t {
	case TypeEquipment, TypeRoom, TypeFacility, TypeVehicle, TypeTechnology, TypeOther:
		return true
	}
	return false
}

// ResourceAvailability is the closed set of availability states.
type ResourceAvailability string

const (
	AvailabilityAvailable   ResourceAvailability = "Available"
	AvailabilityInUse       ResourceAvailability = "In Use"
	AvailabilityMaintenance ResourceAvailability = "Maintenance"
	AvailabilityReserved    ResourceAvailability = "Reserved"
)

// DefaultResourceAvailability is used when a create request omits the availability.
const DefaultResourceAvailability = AvailabilityAvailable

// IsValid reports whether a is one of the known availability states.
func (a ResourceAvailability) IsValid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityInUse, AvailabilityMaintenance, AvailabilityReserved:
		return true
	}
	return false
}

// Resource represents a campus resource (equipment, rooms, facilities)
type Resource struct {
	ID           string               `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string               `gorm:"type:varchar(200);not null" json:"name"`
	Type         ResourceType         `gorm:"type:resource_type;not null;default:'Other';index" json:"type"`
	Availability ResourceAvailability `gorm:"type:resource_availability;not null;default:'Available';index" json:"availability"`
	Description  string               `gorm:"type:varchar(500)" json:"description"`
	Location     string               `gorm:"type:varchar(255)" json:"location"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID when the store has not set one.
func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
