package entity

import "time"

// City is an independent reference entity, read through the listing contract only.
type City struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
