package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpay_backend/internals/features/users/model"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByEmail(email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepository) FindByUsername(username string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepository) FindByID(id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepository) Create(user *model.UserModel) error {
	return r.db.Create(user).Error
}
