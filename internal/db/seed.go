package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/models"
)

// PasswordHasher is the part of auth.Hasher the seed needs.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Seed fills an empty database with the demo catalog and accounts.
// It is a no-op once any user exists.
func Seed(ctx context.Context, db *gorm.DB, hasher PasswordHasher, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminHash, err := hasher.Hash("admin123")
	if err != nil {
		return err
	}
	userHash, err := hasher.Hash("user123")
	if err != nil {
		return err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Username: "admin", Email: strPtr("admin@barbercraft.com"), PasswordHash: adminHash, Role: models.RoleAdmin, Name: "Admin User"},
			{Username: "demo", Email: strPtr("demo@barbercraft.com"), PasswordHash: userHash, Role: models.RoleUser, Name: "Demo User"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(demoServices()).Error; err != nil {
			return err
		}
		if err := tx.Create(demoStaff()).Error; err != nil {
			return err
		}
		if err := tx.Create(demoProducts()).Error; err != nil {
			return err
		}
		return tx.Create(demoReviews(users[1].ID)).Error
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info("seeded demo data", zap.String("admin", "admin"), zap.String("user", "demo"))
	return nil
}

func demoServices() *[]models.Service {
	return &[]models.Service{
		{Name: "Signature Cut", Description: "Our flagship haircut service featuring consultation, precision cutting, and styling with premium products.", Price: 65, Duration: 45, Category: "Haircut", Image: "https://images.pexels.com/photos/1813272/pexels-photo-1813272.jpeg", Featured: true},
		{Name: "Beard Trim & Shape", Description: "Professional beard trimming and shaping to complement your facial structure.", Price: 35, Duration: 30, Category: "Beard", Image: "https://images.pexels.com/photos/1319460/pexels-photo-1319460.jpeg", Featured: true},
		{Name: "Hot Towel Shave", Description: "Traditional hot towel shave with pre-shave oil, lather, and aftercare treatment.", Price: 55, Duration: 40, Category: "Shave", Image: "https://images.pexels.com/photos/3618162/pexels-photo-3618162.jpeg", Featured: true},
		{Name: "Buzz Cut", Description: "Clean, precise buzz cut with your choice of guard length.", Price: 25, Duration: 20, Category: "Haircut", Image: "https://images.pexels.com/photos/1570807/pexels-photo-1570807.jpeg"},
		{Name: "Hair Wash & Style", Description: "Professional wash with premium products and styling.", Price: 45, Duration: 35, Category: "Styling", Image: "https://images.pexels.com/photos/1570810/pexels-photo-1570810.jpeg"},
	}
}

func hours(start, end string) *models.DayHours {
	return &models.DayHours{Start: start, End: end}
}

func demoStaff() *[]models.Staff {
	return &[]models.Staff{
		{
			Name:            "Marcus Johnson",
			Title:           "Master Barber & Owner",
			Bio:             "With over 15 years of experience, Marcus specializes in classic cuts and modern styling techniques.",
			Avatar:          "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg",
			Specialties:     []string{"Classic Cuts", "Beard Styling", "Hot Towel Shaves"},
			Rating:          4.9,
			YearsExperience: 15,
			Featured:        true,
			WorkingHours: map[string]*models.DayHours{
				"monday":    hours("09:00", "18:00"),
				"tuesday":   hours("09:00", "18:00"),
				"wednesday": hours("09:00", "18:00"),
				"thursday":  hours("09:00", "18:00"),
				"friday":    hours("09:00", "19:00"),
				"saturday":  hours("08:00", "17:00"),
				"sunday":    nil,
			},
		},
		{
			Name:            "David Chen",
			Title:           "Senior Barber",
			Bio:             "David brings precision and artistry to every cut, specializing in modern fades and contemporary styles.",
			Avatar:          "https://images.pexels.com/photos/1212984/pexels-photo-1212984.jpeg",
			Specialties:     []string{"Modern Fades", "Precision Cuts", "Hair Styling"},
			Rating:          4.8,
			YearsExperience: 8,
			Featured:        true,
			WorkingHours: map[string]*models.DayHours{
				"monday":    nil,
				"tuesday":   hours("10:00", "19:00"),
				"wednesday": hours("10:00", "19:00"),
				"thursday":  hours("10:00", "19:00"),
				"friday":    hours("10:00", "19:00"),
				"saturday":  hours("09:00", "18:00"),
				"sunday":    hours("10:00", "16:00"),
			},
		},
	}
}

func demoProducts() *[]models.Product {
	return &[]models.Product{
		{Name: "Premium Hold Pomade", Description: "Water-based pomade with strong hold and natural shine. Perfect for classic and modern styles.", Price: 28, Category: "Pomade", Brand: "Gentleman's Choice", Image: "https://images.pexels.com/photos/3618110/pexels-photo-3618110.jpeg", InStock: true, StockCount: 24, Rating: 4.8, ReviewCount: 156, Featured: true},
		{Name: "Matte Clay Texture", Description: "Medium hold styling clay with matte finish. Ideal for textured, natural-looking styles.", Price: 32, Category: "Clay", Brand: "Urban Barber", Image: "https://images.pexels.com/photos/3618164/pexels-photo-3618164.jpeg", InStock: true, StockCount: 18, Rating: 4.6, ReviewCount: 89, Featured: true},
		{Name: "Daily Strength Shampoo", Description: "Gentle daily shampoo that cleanses and strengthens hair without stripping natural oils.", Price: 24, Category: "Shampoo", Brand: "Classic Care", Image: "https://images.pexels.com/photos/3618067/pexels-photo-3618067.jpeg", InStock: true, StockCount: 32, Rating: 4.5, ReviewCount: 203},
		{Name: "Premium Beard Oil", Description: "Nourishing blend of oils to soften, condition, and add shine to your beard.", Price: 22, Category: "Beard Care", Brand: "Beard Master", Image: "https://images.pexels.com/photos/3618162/pexels-photo-3618162.jpeg", InStock: true, StockCount: 28, Rating: 4.9, ReviewCount: 124, Featured: true},
	}
}

func demoReviews(userID uint) *[]models.Review {
	return &[]models.Review{
		{UserID: userID, CustomerName: "John S.", CustomerAvatar: strPtr("https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg"), Rating: 5, Comment: "Marcus gave me the best haircut I've had in years. Attention to detail is incredible, and the atmosphere is perfect. Highly recommend!", ServiceID: uintPtr(1), StaffID: uintPtr(1)},
		{UserID: userID, CustomerName: "Michael J.", Rating: 5, Comment: "The hot towel shave experience was amazing. Very relaxing and professional service. Will definitely be back.", ServiceID: uintPtr(3), StaffID: uintPtr(1)},
		{UserID: userID, CustomerName: "David W.", Rating: 4, Comment: "Great fade by David! He really knows modern styles and gave me exactly what I was looking for.", StaffID: uintPtr(2)},
	}
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }
