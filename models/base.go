package models

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identifier and timestamps shared by every menu document.
// Column and bson names are kept identical so filters work on both store backends.
type Base struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" bson:"updated_at" json:"updatedAt"`
}

func (b *Base) GetID() string { return b.ID }

// Stamp assigns a fresh id (when missing) and refreshes the timestamps.
func (b *Base) Stamp(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// Touch refreshes UpdatedAt only.
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now
}
