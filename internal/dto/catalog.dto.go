package dto

import (
	"time"

	"github.com/BruksfildServices01/barbercraft/internal/models"
)

// Barber is the public shape of a staff member.
type Barber struct {
	ID              string                      `json:"id"`
	Name            string                      `json:"name"`
	Title           string                      `json:"title"`
	Bio             string                      `json:"bio"`
	Avatar          string                      `json:"avatar"`
	Specialties     []string                    `json:"specialties"`
	Rating          float64                     `json:"rating"`
	YearsExperience int                         `json:"yearsExperience"`
	Featured        bool                        `json:"featured"`
	WorkingHours    map[string]*models.DayHours `json:"workingHours"`
}

func BarberFrom(s models.Staff) Barber {
	b := Barber{
		ID:              BarberID(s.ID),
		Name:            s.Name,
		Title:           s.Title,
		Bio:             s.Bio,
		Avatar:          s.Avatar,
		Specialties:     s.Specialties,
		Rating:          s.Rating,
		YearsExperience: s.YearsExperience,
		Featured:        s.Featured,
		WorkingHours:    s.WorkingHours,
	}
	if b.Specialties == nil {
		b.Specialties = []string{}
	}
	if b.WorkingHours == nil {
		b.WorkingHours = map[string]*models.DayHours{}
	}
	return b
}

func BarbersFrom(staff []models.Staff) []Barber {
	out := make([]Barber, 0, len(staff))
	for _, s := range staff {
		out = append(out, BarberFrom(s))
	}
	return out
}

type SearchResult struct {
	Services []models.Service `json:"services"`
	Barbers  []Barber         `json:"barbers"`
	Products []models.Product `json:"products"`
}

type ServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
}

type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock"`
	StockCount  *int     `json:"stock_count"`
	Featured    bool     `json:"featured"`
}

// Customer is a USER account as admins see it.
type Customer struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
