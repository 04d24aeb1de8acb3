// Command seed populates the database with generated users and tasks.
package main

import (
	"flag"
	"log"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	tasksPerUser := flag.Int("tasks", 8, "Average number of tasks per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, ~%d tasks each, clean=%v\n", *numUsers, *tasksPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		TasksPerUser: *tasksPerUser,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! The database is populated with test data.")
}
