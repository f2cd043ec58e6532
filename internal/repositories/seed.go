package repositories

import (
	"errors"
	"log"

	"github.com/vikramsomai/portfolio-skills-manager/internal/config"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account if no user with the configured
// email exists yet. Safe to run on every startup.
func SeedAdmin(db *gorm.DB, admin config.AdminConfig) error {
	var existing models.User
	err := db.Where("email = ?", admin.Email).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username: admin.Username,
		Email:    admin.Email,
		Password: string(hash),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.Println("Admin user created successfully")
	return nil
}
