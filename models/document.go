package models

// Document carries the catalogue fields shared by books, papers and final
// projects. Only file metadata is stored, never the file itself.
type Document struct {
	Base
	Title         string `gorm:"column:title;not null;index" validate:"required"`
	Author        string `gorm:"not null" validate:"required"`
	KnowledgeArea string `gorm:"not null" validate:"required"`
	FileName      string `validate:"required"`
	Path          string `validate:"required"`
	Size          int64  `validate:"gte=0"`
	ExtensionType string `validate:"required"`
	OwnerID       int64  `gorm:"not null;index" validate:"required"`
}

func (d *Document) GetOwnerID() int64        { return d.OwnerID }
func (d *Document) SetOwnerID(ownerID int64) { d.OwnerID = ownerID }
