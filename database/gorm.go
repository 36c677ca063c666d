package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/campushub/api/config"
	"github.com/campushub/api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init creates the enum types and runs AutoMigrate for all models
func (s *GORMStore) Init() error {
	if err := initEnumTypes(); err != nil {
		log.Println("Error creating enum types:", err)
		return err
	}

	log.Println("Running GORM AutoMigrate for all models...")

	err := s.db.AutoMigrate(
		&model.Event{},
		&model.Student{},
		&model.Resource{},
	)
	if err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ListEvents retrieves events ordered by date ascending, optionally filtered
// by exact category and/or a lower date bound.
func (s *GORMStore) ListEvents(filter EventFilter) ([]model.Event, error) {
	query := s.db.Model(&model.Event{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}

	var events []model.Event
	if err := query.Order("date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent retrieves a single event by ID
func (s *GORMStore) GetEvent(id string) (*model.Event, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var event model.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// CreateEvent inserts a new event
func (s *GORMStore) CreateEvent(event *model.Event) error {
	return s.db.Create(event).Error
}

// SaveEvent persists all fields of an already-loaded event
func (s *GORMStore) SaveEvent(event *model.Event) error {
	return s.db.Save(event).Error
}

// DeleteEvent removes an event by ID. Student references are not touched.
func (s *GORMStore) DeleteEvent(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	result := s.db.Delete(&model.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ListStudents retrieves all students in insertion order
func (s *GORMStore) ListStudents() ([]model.Student, error) {
	var students []model.Student
	if err := s.db.Order("created_at asc").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent retrieves a single student by ID
func (s *GORMStore) GetStudent(id string) (*model.Student, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var student model.Student
	if err := s.db.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// GetStudentByEmail retrieves the student holding a normalized email, if any
func (s *GORMStore) GetStudentByEmail(email string) (*model.Student, error) {
	var student model.Student
	if err := s.db.First(&student, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// CreateStudent inserts a new student
func (s *GORMStore) CreateStudent(student *model.Student) error {
	return s.db.Create(student).Error
}

// SaveStudent persists all fields of an already-loaded student
func (s *GORMStore) SaveStudent(student *model.Student) error {
	return s.db.Save(student).Error
}

// DeleteStudent removes a student by ID
func (s *GORMStore) DeleteStudent(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	result := s.db.Delete(&model.Student{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ListResources retrieves resources ordered by name ascending, optionally
// filtered by exact type and/or availability.
func (s *GORMStore) ListResources(filter ResourceFilter) ([]model.Resource, error) {
	query := s.db.Model(&model.Resource{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Availability != "" {
		query = query.Where("availability = ?", filter.Availability)
	}

	var resources []model.Resource
	if err := query.Order("name asc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// GetResource retrieves a single resource by ID
func (s *GORMStore) GetResource(id string) (*model.Resource, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var resource model.Resource
	if err := s.db.First(&resource, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &resource, nil
}

// CreateResource inserts a new resource
func (s *GORMStore) CreateResource(resource *model.Resource) error {
	return s.db.Create(resource).Error
}

// SaveResource persists all fields of an already-loaded resource
func (s *GORMStore) SaveResource(resource *model.Resource) error {
	return s.db.Save(resource).Error
}

// DeleteResource removes a resource by ID
func (s *GORMStore) DeleteResource(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	result := s.db.Delete(&model.Resource{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
