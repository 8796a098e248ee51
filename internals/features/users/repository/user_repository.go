package repository

import (
	"github.com/google/uuid"

	"schoolpay_backend/internals/features/users/model"
)

// UserRepository is the narrow read/write contract the auth service
// depends on, independent of the storage engine.
type UserRepository interface {
	FindByEmail(email string) (*model.UserModel, error)
	FindByUsername(username string) (*model.UserModel, error)
	FindByID(id uuid.UUID) (*model.UserModel, error)
	Create(user *model.UserModel) error
}
