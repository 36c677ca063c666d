package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/campushub/api/config"
	_ "github.com/lib/pq"
)

// initEnumTypes creates the PostgreSQL enum types backing the category, type
// and availability columns. AutoMigrate cannot create native enum types, so
// this runs over a plain database/sql connection before migration.
func initEnumTypes() error {
	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	connectStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv.DB_HOST,
		getEnv.DB_PORT,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_SSL_MODE,
	)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Println("Initializing PostgreSQL enum types.")

	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'event_category') THEN
				CREATE TYPE event_category AS ENUM ('Academic', 'Sports', 'Cultural', 'Workshop', 'Seminar', 'Social', 'Other');
			END IF;
		END $$;

		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'resource_type') THEN
				CREATE TYPE resource_type AS ENUM ('Equipment', 'Room', 'Facility', 'Vehicle', 'Technology', 'Other');
			END IF;
		END $$;

		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'resource_availability') THEN
				CREATE TYPE resource_availability AS ENUM ('Available', 'In Use', 'Maintenance', 'Reserved');
			END IF;
		END $$;
	`
	_, err = db.Exec(query)

	return err
}
