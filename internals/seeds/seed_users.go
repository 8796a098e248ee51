package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolpay_backend/internals/configs"
	"schoolpay_backend/internals/features/users/model"
)

// RunAllSeeds bootstraps the records a fresh install needs. Every seed
// is idempotent: existing rows are left alone.
func RunAllSeeds(db *gorm.DB, cfg *configs.Config) {
	seedAdminUser(db, cfg)
}

// seedAdminUser creates the initial admin account from the configured
// admin credentials. Skipped entirely when they are not set.
func seedAdminUser(db *gorm.DB, cfg *configs.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var existing model.UserModel
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		log.Printf("[SEED] admin %s already exists, skipped", cfg.AdminEmail)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] hash admin password: %v", err)
		return
	}

	admin := model.UserModel{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] create admin %s: %v", cfg.AdminEmail, err)
		return
	}
	log.Printf("[SEED] admin %s created", cfg.AdminEmail)
}
