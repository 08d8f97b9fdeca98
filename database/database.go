package database

import (
	"fmt"
	"log"
	"os"

	"onboard/config"
	"onboard/models"
	"onboard/models/catalog"
	"onboard/models/plan"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes the database connection. PostgreSQL is the default;
// DB_DRIVER=sqlite opens a local file database for development.
func ConnectDb() {
	var db *gorm.DB
	var err error

	switch config.AppConfig.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.LoginTracking{},
		&models.Instructor{},
		&models.SupportTicket{},
		&catalog.StepTemplate{},
		&catalog.StepTemplateModule{},
		&catalog.ContentModule{},
		&catalog.ModuleQuizQuestion{},
		&catalog.ModuleChecklistItem{},
		&catalog.ModuleFileRequirement{},
		&plan.OnboardingStep{},
		&plan.Task{},
		&plan.TaskQuizQuestion{},
		&plan.TaskChecklistItem{},
		&plan.TaskFileRequirement{},
		&plan.QuizAnswer{},
		&plan.TaskFileUpload{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
