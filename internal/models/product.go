package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:1000" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50;default:'Tools'" json:"category"`
	Brand       string  `gorm:"size:100;default:'BarberCraft'" json:"brand"`
	Image       string  `gorm:"size:500" json:"image"`
	InStock     bool    `gorm:"not null" json:"in_stock"`
	StockCount  int     `gorm:"not null" json:"stock_count"`
	Rating      float64 `gorm:"default:4.5" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`
	Featured    bool    `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
