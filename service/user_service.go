package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	GenericService[models.User, dto.UserDTO]
	FindByLogin(ctx context.Context, login string) (dto.UserDTO, error)
}

type UserServiceImpl struct {
	*GenericServiceImpl[models.User, dto.UserDTO]
	users    repository.UserRepository
	hashCost int
}

func NewUserService(repo repository.UserRepository) *UserServiceImpl {
	s := &UserServiceImpl{users: repo, hashCost: bcrypt.DefaultCost}
	s.GenericServiceImpl = NewGenericService[models.User, dto.UserDTO](repo, dto.UserMapper{}, s)
	return s
}

// Create stores the account with a bcrypt hash of the given password.
func (s *UserServiceImpl) Create(ctx context.Context, d dto.UserDTO) (dto.UserDTO, error) {
	if d.Password == nil || *d.Password == "" {
		return dto.UserDTO{}, apperror.Business(http.StatusBadRequest, "Error: Password must not be empty.")
	}
	hashed, err := s.hash(*d.Password)
	if err != nil {
		return dto.UserDTO{}, err
	}
	d.Password = &hashed
	return s.GenericServiceImpl.Create(ctx, d)
}

// Update merges the given fields; a new password is hashed first.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, d dto.UserDTO) (dto.UserDTO, error) {
	if _, err := s.findUser(ctx, id); err != nil {
		return dto.UserDTO{}, err
	}
	if d.Password != nil {
		if *d.Password == "" {
			d.Password = nil
		} else {
			hashed, err := s.hash(*d.Password)
			if err != nil {
				return dto.UserDTO{}, err
			}
			d.Password = &hashed
		}
	}
	return s.GenericServiceImpl.Update(ctx, id, d)
}

func (s *UserServiceImpl) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}
	return s.Repository().DeleteByID(ctx, id)
}

func (s *UserServiceImpl) FindByLogin(ctx context.Context, login string) (dto.UserDTO, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.UserDTO{}, apperror.Business(http.StatusNotFound, "Error: User not found with login [%s]", login)
		}
		return dto.UserDTO{}, err
	}
	return s.response(user), nil
}

func (s *UserServiceImpl) ValidateBeforeSave(ctx context.Context, user *models.User) error {
	if err := s.validateLogin(ctx, user.Login, user.ID); err != nil {
		return err
	}
	return s.validateEmail(ctx, user.Email, user.ID)
}

func (s *UserServiceImpl) ValidateBeforeUpdate(ctx context.Context, user *models.User) error {
	return s.ValidateBeforeSave(ctx, user)
}

func (s *UserServiceImpl) findUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.Repository().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Business(http.StatusNotFound, "Error: User not found with id [%d]", id)
	}
	return user, err
}

func (s *UserServiceImpl) validateLogin(ctx context.Context, login string, id int64) error {
	if strings.TrimSpace(login) == "" {
		return apperror.Business(http.StatusBadRequest, "Error: Login must not be empty.")
	}
	other, err := s.users.FindByLogin(ctx, login)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != id {
		return apperror.Business(http.StatusBadRequest, "Invalid login: %s. A user with this login is already registered.", login)
	}
	return nil
}

func (s *UserServiceImpl) validateEmail(ctx context.Context, email string, id int64) error {
	if strings.TrimSpace(email) == "" {
		return apperror.Business(http.StatusBadRequest, "Error: Email must not be empty.")
	}
	other, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != id {
		return apperror.Business(http.StatusBadRequest, "Invalid email: %s. A user with this email is already registered.", email)
	}
	return nil
}

func (s *UserServiceImpl) hash(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
