package repository

import (
	"context"

	"github.com/RigelNana/acervo/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	BaseRepository[models.User]
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserRepositoryImpl struct {
	*BaseRepositoryImpl[models.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.User](db, map[string]string{
			"id":        "id",
			"login":     "login",
			"email":     "email",
			"createdAt": "created_at",
		}),
	}
}

func (r *UserRepositoryImpl) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.active(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.active(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
