// Package db opens the application database connection.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	aboutentity "github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain/entity"
	authentity "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"
	courseentity "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain/entity"
	newsentity "github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain/entity"
)

// OpenDB connects to postgres with retries, then optionally runs the schema
// migration. It fatals when the database stays unreachable past the deadline.
func OpenDB(dsn string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&newsentity.NewsArticle{},
		&aboutentity.AboutSection{},
		&courseentity.Course{},
	)
}
