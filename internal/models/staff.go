package models

import "time"

// DayHours is one working day; a nil entry in WorkingHours means day off.
type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Staff struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	Name            string               `gorm:"size:100;not null" json:"name"`
	Title           string               `gorm:"size:100" json:"title"`
	Bio             string               `gorm:"size:1000" json:"bio"`
	Avatar          string               `gorm:"size:500" json:"avatar"`
	Specialties     []string             `gorm:"type:text;serializer:json" json:"specialties"`
	Rating          float64              `gorm:"default:4.5" json:"rating"`
	YearsExperience int                  `gorm:"default:0" json:"years_experience"`
	Featured        bool                 `gorm:"default:false" json:"featured"`
	WorkingHours    map[string]*DayHours `gorm:"type:text;serializer:json" json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (Staff) TableName() string {
	return "staff"
}
