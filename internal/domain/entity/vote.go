package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a record cast by a user. This service only reads votes through the
// listing contract; the write path belongs to another subsystem.
type Vote struct {
	ID        int64
	UserID    uuid.UUID
	CityID    int64
	CreatedAt time.Time
}
