package db

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rafaelsantos7520/dermalise-admin/internal/config"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

// SeedAdmin garante que o admin inicial exista (idempotente)
func SeedAdmin(db *gorm.DB, cfg *config.Config) {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("admin seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("admin seed hash failed: %v", err)
		return
	}

	admin := models.Admin{
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("admin seed failed: %v", err)
		return
	}

	log.Printf("admin seeded: %s", admin.Email)
}
