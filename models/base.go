package models

import (
	"time"

	"gorm.io/gorm"
)

// Entity is implemented by every persisted type through the embedded Base.
type Entity interface {
	GetID() int64
	IsActive() bool
	SetActive(active bool)
}

// Owned is implemented by documents, which record the user that created them.
type Owned interface {
	GetOwnerID() int64
	SetOwnerID(ownerID int64)
}

// Base holds the columns shared by all tables. Rows are never removed:
// deleting flips Active to false.
type Base struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"<-:create;not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Active    bool      `gorm:"not null;default:true;index" json:"active"`
}

func (b *Base) GetID() int64          { return b.ID }
func (b *Base) IsActive() bool        { return b.Active }
func (b *Base) SetActive(active bool) { b.Active = active }

// BeforeCreate forces new rows to start active.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	b.Active = true
	return nil
}
