package dto

import "github.com/RigelNana/acervo/models"

type UserDTO struct {
	ID       int64   `json:"id"`
	Login    *string `json:"login,omitempty"`
	Password *string `json:"password,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ToResponse drops the password hash.
func (d UserDTO) ToResponse() UserDTO {
	d.Password = nil
	return d
}

type UserMapper struct{}

func (UserMapper) ToDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Login:    ptr(u.Login),
		Password: ptr(u.Password),
		Email:    ptr(u.Email),
	}
}

func (UserMapper) ToEntity(d UserDTO) *models.User {
	return &models.User{
		Login:    val(d.Login),
		Password: val(d.Password),
		Email:    val(d.Email),
	}
}

func (UserMapper) Merge(dst *models.User, src UserDTO) {
	merge(&dst.Login, src.Login)
	merge(&dst.Password, src.Password)
	merge(&dst.Email, src.Email)
}

type AuthRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}
