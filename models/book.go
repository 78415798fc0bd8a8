package models

import "gorm.io/gorm"

type Book struct {
	Document
	PublicationYear string `gorm:"not null" validate:"required"`
	Edition         string `gorm:"not null" validate:"required"`
	Publisher       string `gorm:"not null" validate:"required"`
	// ISBN is unique among active books only, so a soft-deleted book frees its ISBN.
	ISBN string `gorm:"column:isbn;not null;uniqueIndex:idx_books_isbn_active,where:active = true" validate:"required"`
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeSave(tx *gorm.DB) error {
	return validateEntity(b)
}
