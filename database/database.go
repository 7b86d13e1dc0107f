package database

import (
	"fmt"
	"log"
	"os"

	"streamflix-app/internal/domain/billing"
	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
	"streamflix-app/internal/domain/users"
	"streamflix-app/internal/domain/videos"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&users.Profile{},
		&users.VerificationToken{},

		// billing
		&plans.Plan{},
		&subscriptions.Subscription{},
		&billing.Payment{},

		// catalog
		&videos.Video{},
		&videos.Episode{},
		&videos.WatchHistory{},
		&videos.WatchlistItem{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
