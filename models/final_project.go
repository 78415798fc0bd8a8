package models

import "gorm.io/gorm"

type FinalProject struct {
	Document
	DefenseYear string `gorm:"not null" validate:"required"`
	Course      string `gorm:"not null" validate:"required"`
	Institution string `gorm:"not null" validate:"required"`
	Advisor     string `gorm:"not null" validate:"required"`
}

func (FinalProject) TableName() string {
	return "final_projects"
}

func (f *FinalProject) BeforeSave(tx *gorm.DB) error {
	return validateEntity(f)
}
