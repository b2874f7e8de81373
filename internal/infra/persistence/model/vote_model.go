package model

import (
	"time"

	"github.com/google/uuid"
)

// VoteModel mirrors the 'votes' table. Read-only from this service.
type VoteModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CityID    int64     `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}
