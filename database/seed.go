package database

import (
	"fmt"
	"log"
	"time"

	"github.com/campushub/api/model"
)

// Seeder fills an empty store with sample campus data for local development.
type Seeder struct {
	store Storage
}

// NewSeeder creates a new seeder instance
func NewSeeder(store Storage) *Seeder {
	return &Seeder{store: store}
}

// RunSeeds seeds all collections against the given store
func RunSeeds(store Storage) error {
	return NewSeeder(store).SeedAll()
}

// SeedAll runs all seed functions. Events go first so students can
// reference them.
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	eventIDs, err := s.SeedEvents()
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedResources(); err != nil {
		return fmt.Errorf("failed to seed resources: %w", err)
	}

	if err := s.SeedStudents(eventIDs); err != nil {
		return fmt.Errorf("failed to seed students: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedEvents creates the sample events unless events already exist.
func (s *Seeder) SeedEvents() ([]string, error) {
	existing, err := s.store.ListEvents(EventFilter{})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Println("Events already present, skipping event seeding.")
		ids := make([]string, 0, len(existing))
		for _, event := range existing {
			ids = append(ids, event.ID)
		}
		return ids, nil
	}

	now := time.Now().UTC()
	events := []model.Event{
		{
			Title:       "Annual Tech Symposium",
			Category:    model.CategoryAcademic,
			Date:        now.AddDate(0, 1, 0),
			Description: "Research talks and demos from every department.",
			Organizer:   model.Organizer{Name: "CS Department", Department: "Computer Science", Contact: "cs@campushub.edu"},
		},
		{
			Title:     "Inter-College Football Cup",
			Category:  model.CategorySports,
			Date:      now.AddDate(0, 2, 0),
			Organizer: model.Organizer{Name: "Sports Committee", Department: "Athletics"},
		},
		{
			Title:       "Go Workshop",
			Category:    model.CategoryWorkshop,
			Date:        now.AddDate(0, 0, 14),
			Description: "Hands-on introduction to building web services.",
			Organizer:   model.Organizer{Name: "Coding Club", Contact: "club@campushub.edu"},
		},
		{
			Title:     "Spring Cultural Night",
			Category:  model.CategoryCultural,
			Date:      now.AddDate(0, 3, 0),
			Organizer: model.Organizer{Name: "Cultural Society"},
		},
	}

	ids := make([]string, 0, len(events))
	for i := range events {
		if err := s.store.CreateEvent(&events[i]); err != nil {
			return nil, err
		}
		ids = append(ids, events[i].ID)
	}
	log.Printf("Seeded %d events.", len(events))
	return ids, nil
}

// SeedResources creates the sample resources unless resources already exist.
func (s *Seeder) SeedResources() error {
	existing, err := s.store.ListResources(ResourceFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("Resources already present, skipping resource seeding.")
		return nil
	}

	resources := []model.Resource{
		{
			Name:         "Main Auditorium",
			Type:         model.TypeFacility,
			Availability: model.AvailabilityAvailable,
			Description:  "Seats 400, full AV setup.",
			Location:     "Block A",
		},
		{
			Name:         "Portable Projector",
			Type:         model.TypeEquipment,
			Availability: model.AvailabilityInUse,
			Location:     "Media Office",
		},
		{
			Name:         "Seminar Hall 2",
			Type:         model.TypeRoom,
			Availability: model.AvailabilityReserved,
			Location:     "Block C, Floor 2",
		},
		{
			Name:         "Campus Shuttle",
			Type:         model.TypeVehicle,
			Availability: model.AvailabilityMaintenance,
		},
	}

	for i := range resources {
		if err := s.store.CreateResource(&resources[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d resources.", len(resources))
	return nil
}

// SeedStudents creates sample students registered for the seeded events.
func (s *Seeder) SeedStudents(eventIDs []string) error {
	existing, err := s.store.ListStudents()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("Students already present, skipping student seeding.")
		return nil
	}

	firstTwo := eventIDs
	if len(firstTwo) > 2 {
		firstTwo = firstTwo[:2]
	}

	students := []model.Student{
		{Name: "Priya Sharma", Email: "priya.sharma@campushub.edu", RegisteredEvents: append([]string{}, firstTwo...)},
		{Name: "Rahul Verma", Email: "rahul.verma@campushub.edu", RegisteredEvents: []string{}},
	}

	for i := range students {
		if err := s.store.CreateStudent(&students[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d students.", len(students))
	return nil
}
