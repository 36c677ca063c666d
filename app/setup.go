package app

import (
	"fmt"
	"log"

	"github.com/campushub/api/api"
	"github.com/campushub/api/config"
	"github.com/campushub/api/database"
	"github.com/campushub/api/router"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Select the storage backend
	var store database.Storage
	if getEnv.STORAGE_DRIVER == "memory" {
		log.Println("Using in-memory storage (data is not persisted).")
		store = database.NewMemoryStore()
	} else {
		gormStore, err := database.StartGORM()
		if err != nil {
			print("Check whether Postgres is running or not\n")
			print("If not running, run the following command:\n")
			print("  make docker-up   (for Docker setup)\n")
			print("  make db-up       (for local PostgreSQL)\n")
			return err
		}
		store = gormStore
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Defer closing the store
	defer store.Close()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes
	router.SetupRoutes(app, store)

	// Get the PORT & Start the Server
	return server.Run()

}
