package models

import "gorm.io/gorm"

type Paper struct {
	Document
	Year  string `gorm:"not null" validate:"required"`
	Venue string `gorm:"not null" validate:"required"`
}

func (Paper) TableName() string {
	return "papers"
}

func (p *Paper) BeforeSave(tx *gorm.DB) error {
	return validateEntity(p)
}
