package services

import (
	"errors"
	"testing"
	"time"

	"github.com/campushub/api/database"
	"github.com/campushub/api/model"
)

func newServiceFixture(t *testing.T) (*StudentService, database.Storage) {
	t.Helper()
	store := database.NewMemoryStore()
	return NewStudentService(store), store
}

func mustCreateEvent(t *testing.T, store database.Storage, title string) *model.Event {
	t.Helper()
	event := &model.Event{
		Title:     title,
		Category:  model.CategoryWorkshop,
		Date:      time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		Organizer: model.Organizer{Name: "CS Department"},
	}
	if err := store.CreateEvent(event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return event
}

func TestCreateStudentNormalizesEmail(t *testing.T) {
	svc, _ := newServiceFixture(t)

	student, err := svc.Create("Ada", "  Ada@Campus.EDU ", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if student.Email != "ada@campus.edu" {
		t.Errorf("email = %q, want normalized", student.Email)
	}
	if student.RegisteredEvents == nil || len(student.RegisteredEvents) != 0 {
		t.Errorf("registeredEvents = %v, want empty list", student.RegisteredEvents)
	}
}

func TestCreateStudentRejectsInvalidEmail(t *testing.T) {
	svc, store := newServiceFixture(t)

	if _, err := svc.Create("Bad", "not-an-email", nil); !errors.Is(err, model.ErrInvalidEmail) {
		t.Fatalf("Create = %v, want ErrInvalidEmail", err)
	}

	students, err := store.ListStudents()
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(students) != 0 {
		t.Errorf("rejected create still wrote %d students", len(students))
	}
}

func TestCreateStudentDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newServiceFixture(t)

	if _, err := svc.Create("First", "shared@campus.edu", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create("Second", "SHARED@Campus.edu", nil); !errors.Is(err, model.ErrDuplicateEmail) {
		t.Fatalf("Create duplicate = %v, want ErrDuplicateEmail", err)
	}
}

func TestCreateStudentUnresolvedReferenceLeavesStoreClean(t *testing.T) {
	svc, store := newServiceFixture(t)

	event := mustCreateEvent(t, store, "Compilers Workshop")
	missing := "0e3f9b1a-9df0-4c8e-9f79-000000000000"

	_, err := svc.Create("Eve", "eve@campus.edu", []string{event.ID, missing})
	var refErr *model.UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Create = %v, want UnresolvedReferenceError", err)
	}
	if refErr.EventID != missing {
		t.Errorf("EventID = %q, want %q", refErr.EventID, missing)
	}

	students, err := store.ListStudents()
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(students) != 0 {
		t.Errorf("failed create still wrote %d students", len(students))
	}
}

func TestCreateStudentMalformedReferenceReported(t *testing.T) {
	svc, _ := newServiceFixture(t)

	_, err := svc.Create("Eve", "eve@campus.edu", []string{"garbage"})
	var refErr *model.UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Create = %v, want UnresolvedReferenceError", err)
	}
	if refErr.EventID != "garbage" {
		t.Errorf("EventID = %q", refErr.EventID)
	}
}

func TestUpdateStudentPartialMerge(t *testing.T) {
	svc, store := newServiceFixture(t)

	event := mustCreateEvent(t, store, "Robotics Club Intro")
	student, err := svc.Create("Grace", "grace@campus.edu", []string{event.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(student.ID, UpdateStudentParams{Name: "Grace H."})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Grace H." {
		t.Errorf("name = %q", updated.Name)
	}
	if updated.Email != "grace@campus.edu" {
		t.Errorf("email changed unexpectedly: %q", updated.Email)
	}
	if len(updated.RegisteredEvents) != 1 || updated.RegisteredEvents[0] != event.ID {
		t.Errorf("registeredEvents changed unexpectedly: %v", updated.RegisteredEvents)
	}
}

func TestUpdateStudentReplacesRegisteredEvents(t *testing.T) {
	svc, store := newServiceFixture(t)

	first := mustCreateEvent(t, store, "First Event")
	second := mustCreateEvent(t, store, "Second Event")
	student, err := svc.Create("Hopper", "hopper@campus.edu", []string{first.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	replacement := []string{second.ID}
	updated, err := svc.Update(student.ID, UpdateStudentParams{RegisteredEvents: &replacement})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.RegisteredEvents) != 1 || updated.RegisteredEvents[0] != second.ID {
		t.Errorf("registeredEvents = %v, want replacement", updated.RegisteredEvents)
	}

	empty := []string{}
	updated, err = svc.Update(student.ID, UpdateStudentParams{RegisteredEvents: &empty})
	if err != nil {
		t.Fatalf("Update to empty: %v", err)
	}
	if len(updated.RegisteredEvents) != 0 {
		t.Errorf("registeredEvents = %v, want empty", updated.RegisteredEvents)
	}
}

func TestUpdateStudentEmailConflict(t *testing.T) {
	svc, _ := newServiceFixture(t)

	if _, err := svc.Create("Taken", "taken@campus.edu", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	student, err := svc.Create("Mover", "mover@campus.edu", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(student.ID, UpdateStudentParams{Email: "Taken@campus.edu"}); !errors.Is(err, model.ErrDuplicateEmail) {
		t.Fatalf("Update = %v, want ErrDuplicateEmail", err)
	}

	// Re-submitting the student's own email is not a conflict.
	if _, err := svc.Update(student.ID, UpdateStudentParams{Email: "MOVER@campus.edu"}); err != nil {
		t.Fatalf("Update own email: %v", err)
	}
}

func TestUpdateStudentFailedCheckLeavesStateIntact(t *testing.T) {
	svc, store := newServiceFixture(t)

	event := mustCreateEvent(t, store, "Kept Event")
	student, err := svc.Create("Stable", "stable@campus.edu", []string{event.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bad := []string{"not-a-uuid"}
	_, err = svc.Update(student.ID, UpdateStudentParams{Name: "Changed", RegisteredEvents: &bad})
	var refErr *model.UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Update = %v, want UnresolvedReferenceError", err)
	}

	stored, err := store.GetStudent(student.ID)
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if stored.Name != "Stable" {
		t.Errorf("name = %q, rejected update leaked", stored.Name)
	}
	if len(stored.RegisteredEvents) != 1 || stored.RegisteredEvents[0] != event.ID {
		t.Errorf("registeredEvents = %v, rejected update leaked", stored.RegisteredEvents)
	}
}

func TestUpdateStudentUnknownID(t *testing.T) {
	svc, _ := newServiceFixture(t)

	if _, err := svc.Update("0e3f9b1a-9df0-4c8e-9f79-000000000000", UpdateStudentParams{Name: "Nobody"}); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Update absent = %v, want ErrNotFound", err)
	}
	if _, err := svc.Update("nope", UpdateStudentParams{Name: "Nobody"}); !errors.Is(err, model.ErrMalformedID) {
		t.Errorf("Update malformed = %v, want ErrMalformedID", err)
	}
}

func TestViewSkipsDanglingReferences(t *testing.T) {
	svc, store := newServiceFixture(t)

	kept := mustCreateEvent(t, store, "Kept")
	doomed := mustCreateEvent(t, store, "Doomed")
	student, err := svc.Create("Viewer", "viewer@campus.edu", []string{kept.ID, doomed.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.DeleteEvent(doomed.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}

	stored, err := store.GetStudent(student.ID)
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if len(stored.RegisteredEvents) != 2 {
		t.Fatalf("stored list = %v, dangling reference was scrubbed", stored.RegisteredEvents)
	}

	view, err := svc.View(*stored)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(view.RegisteredEvents) != 1 {
		t.Fatalf("view has %d summaries, want 1", len(view.RegisteredEvents))
	}
	if view.RegisteredEvents[0].ID != kept.ID || view.RegisteredEvents[0].Title != "Kept" {
		t.Errorf("summary = %+v", view.RegisteredEvents[0])
	}
}
