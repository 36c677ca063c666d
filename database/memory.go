package database

import (
	"sort"
	"sync"
	"time"

	"github.com/campushub/api/model"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory Storage implementation guarded by a mutex.
// It backs the test suite and dependency-free local runs
// (STORAGE_DRIVER=memory). Records are copied on the way in and out so
// callers never alias store-owned state.
//
// The uniqueness and reference checks performed by callers are not atomic
// with the subsequent write here either; the store mirrors the
// check-then-act behavior of the SQL implementation.
type MemoryStore struct {
	mu sync.RWMutex

	events    map[string]model.Event
	students  map[string]model.Student
	resources map[string]model.Resource

	// studentOrder preserves insertion order for ListStudents.
	studentOrder []string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events:    make(map[string]model.Event),
		students:  make(map[string]model.Student),
		resources: make(map[string]model.Resource),
	}
}

// Init is a no-op; the maps are ready at construction.
func (s *MemoryStore) Init() error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

// HealthCheck always reports healthy.
func (s *MemoryStore) HealthCheck() error { return nil }

func stampNew(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}

func copyStudent(student model.Student) model.Student {
	out := student
	out.RegisteredEvents = append(out.RegisteredEvents[:0:0], student.RegisteredEvents...)
	return out
}

// ListEvents returns events ordered by date ascending, optionally filtered.
func (s *MemoryStore) ListEvents(filter EventFilter) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]model.Event, 0, len(s.events))
	for _, event := range s.events {
		if filter.Category != "" && string(event.Category) != filter.Category {
			continue
		}
		if filter.DateFrom != nil && event.Date.Before(*filter.DateFrom) {
			continue
		}
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

// GetEvent retrieves a single event by ID
func (s *MemoryStore) GetEvent(id string) (*model.Event, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &event, nil
}

// CreateEvent inserts a new event, assigning its ID and timestamps
func (s *MemoryStore) CreateEvent(event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stampNew(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	s.events[event.ID] = *event
	return nil
}

// SaveEvent replaces a stored event
func (s *MemoryStore) SaveEvent(event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.ID]; !ok {
		return model.ErrNotFound
	}
	event.UpdatedAt = time.Now().UTC()
	s.events[event.ID] = *event
	return nil
}

// DeleteEvent removes an event by ID. Student references are not touched.
func (s *MemoryStore) DeleteEvent(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

// ListStudents returns all students in insertion order
func (s *MemoryStore) ListStudents() ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]model.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		if student, ok := s.students[id]; ok {
			students = append(students, copyStudent(student))
		}
	}
	return students, nil
}

// GetStudent retrieves a single student by ID
func (s *MemoryStore) GetStudent(id string) (*model.Student, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := copyStudent(student)
	return &out, nil
}

// GetStudentByEmail retrieves the student holding a normalized email, if any
func (s *MemoryStore) GetStudentByEmail(email string) (*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.studentOrder {
		if student, ok := s.students[id]; ok && student.Email == email {
			out := copyStudent(student)
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

// CreateStudent inserts a new student, assigning its ID and timestamps
func (s *MemoryStore) CreateStudent(student *model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stampNew(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	s.students[student.ID] = copyStudent(*student)
	s.studentOrder = append(s.studentOrder, student.ID)
	return nil
}

// SaveStudent replaces a stored student
func (s *MemoryStore) SaveStudent(student *model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[student.ID]; !ok {
		return model.ErrNotFound
	}
	student.UpdatedAt = time.Now().UTC()
	s.students[student.ID] = copyStudent(*student)
	return nil
}

// DeleteStudent removes a student by ID
func (s *MemoryStore) DeleteStudent(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.students, id)
	for i, sid := range s.studentOrder {
		if sid == id {
			s.studentOrder = append(s.studentOrder[:i], s.studentOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ListResources returns resources ordered by name ascending, optionally filtered.
func (s *MemoryStore) ListResources(filter ResourceFilter) ([]model.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := make([]model.Resource, 0, len(s.resources))
	for _, resource := range s.resources {
		if filter.Type != "" && string(resource.Type) != filter.Type {
			continue
		}
		if filter.Availability != "" && string(resource.Availability) != filter.Availability {
			continue
		}
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool {
		return resources[i].Name < resources[j].Name
	})
	return resources, nil
}

// GetResource retrieves a single resource by ID
func (s *MemoryStore) GetResource(id string) (*model.Resource, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	resource, ok := s.resources[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &resource, nil
}

// CreateResource inserts a new resource, assigning its ID and timestamps
func (s *MemoryStore) CreateResource(resource *model.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stampNew(&resource.ID, &resource.CreatedAt, &resource.UpdatedAt)
	s.resources[resource.ID] = *resource
	return nil
}

// SaveResource replaces a stored resource
func (s *MemoryStore) SaveResource(resource *model.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[resource.ID]; !ok {
		return model.ErrNotFound
	}
	resource.UpdatedAt = time.Now().UTC()
	s.resources[resource.ID] = *resource
	return nil
}

// DeleteResource removes a resource by ID
func (s *MemoryStore) DeleteResource(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.resources, id)
	return nil
}
