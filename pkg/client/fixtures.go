package client

func ptr[T any](v T) *T { return &v }

func fixtureServices() []Service {
	return []Service{
		{ID: 1, Name: "Signature Cut", Description: "Our flagship haircut service featuring consultation, precision cutting, and styling with premium products.", Price: 65, Duration: 45, Category: "Haircut", Featured: true},
		{ID: 2, Name: "Beard Trim & Shape", Description: "Professional beard trimming and shaping to complement your facial structure.", Price: 35, Duration: 30, Category: "Beard", Featured: true},
		{ID: 3, Name: "Hot Towel Shave", Description: "Traditional hot towel shave with pre-shave oil, lather, and aftercare treatment.", Price: 55, Duration: 40, Category: "Shave", Featured: true},
		{ID: 4, Name: "Buzz Cut", Description: "Clean, precise buzz cut with your choice of guard length.", Price: 25, Duration: 20, Category: "Haircut"},
		{ID: 5, Name: "Hair Wash & Style", Description: "Professional wash with premium products and styling.", Price: 45, Duration: 35, Category: "Styling"},
	}
}

func fixtureBarbers() []Barber {
	return []Barber{
		{
			ID:              "barber_1",
			Name:            "Marcus Johnson",
			Title:           "Master Barber & Owner",
			Bio:             "With over 15 years of experience, Marcus specializes in classic cuts and modern styling techniques.",
			Specialties:     []string{"Classic Cuts", "Beard Styling", "Hot Towel Shaves"},
			Rating:          4.9,
			YearsExperience: 15,
			Featured:        true,
			WorkingHours: map[string]*DayHours{
				"monday": {"09:00", "18:00"},
				"friday": {"09:00", "19:00"},
				"sunday": nil,
			},
		},
		{
			ID:              "barber_2",
			Name:            "David Chen",
			Title:           "Senior Barber",
			Bio:             "David brings precision and artistry to every cut, specializing in modern fades and contemporary styles.",
			Specialties:     []string{"Modern Fades", "Precision Cuts", "Hair Styling"},
			Rating:          4.8,
			YearsExperience: 8,
			Featured:        true,
			WorkingHours: map[string]*DayHours{
				"monday":  nil,
				"tuesday": {"10:00", "19:00"},
				"sunday":  {"10:00", "16:00"},
			},
		},
	}
}

func fixtureProducts() []Product {
	return []Product{
		{ID: 1, Name: "Premium Hold Pomade", Description: "Water-based pomade with strong hold and natural shine.", Price: 28, Category: "Pomade", Brand: "Gentleman's Choice", InStock: true, StockCount: 24, Rating: 4.8, ReviewCount: 156, Featured: true},
		{ID: 2, Name: "Matte Clay Texture", Description: "Medium hold styling clay with matte finish.", Price: 32, Category: "Clay", Brand: "Urban Barber", InStock: true, StockCount: 18, Rating: 4.6, ReviewCount: 89, Featured: true},
		{ID: 3, Name: "Daily Strength Shampoo", Description: "Gentle daily shampoo that cleanses and strengthens hair.", Price: 24, Category: "Shampoo", Brand: "Classic Care", InStock: true, StockCount: 32, Rating: 4.5, ReviewCount: 203},
		{ID: 4, Name: "Premium Beard Oil", Description: "Nourishing blend of oils to soften and condition your beard.", Price: 22, Category: "Beard Care", Brand: "Beard Master", InStock: true, StockCount: 28, Rating: 4.9, ReviewCount: 124, Featured: true},
	}
}

func fixtureReviews() []Review {
	return []Review{
		{ID: 1, UserID: 2, CustomerName: "John S.", Rating: 5, Comment: "Marcus gave me the best haircut I've had in years.", ServiceID: ptr(uint(1)), StaffID: ptr(uint(1))},
		{ID: 2, UserID: 2, CustomerName: "Michael J.", Rating: 5, Comment: "The hot towel shave experience was amazing.", ServiceID: ptr(uint(3)), StaffID: ptr(uint(1))},
		{ID: 3, UserID: 2, CustomerName: "David W.", Rating: 4, Comment: "Great fade by David!", StaffID: ptr(uint(2))},
	}
}
