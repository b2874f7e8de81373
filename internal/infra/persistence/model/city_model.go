package model

import "time"

// CityModel mirrors the 'cities' reference table. Read-only from this service.
type CityModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
