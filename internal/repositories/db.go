package repositories

import (
	"log"

	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. TranslateError
// lets callers match unique-constraint violations as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Contact{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Successfully connected to database")
	return db, nil
}
