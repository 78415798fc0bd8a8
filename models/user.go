package models

import "gorm.io/gorm"

// User 仅保存登录所需数据；Password 为 bcrypt 哈希
type User struct {
	Base
	Login    string `gorm:"not null;uniqueIndex:idx_users_login_active,where:active = true" validate:"required"`
	Password string `gorm:"not null" validate:"required"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email_active,where:active = true" validate:"required,email"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return validateEntity(u)
}
