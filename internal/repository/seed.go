package repository

import "github.com/ChesterTeam/UniMarket/internal/model"

var seedUsers = []model.User{
	{
		ID:        "user_1",
		Name:      "Ivan Petrov",
		Email:     "ivan.petrov@student.university.edu",
		Password:  "password123",
		Rating:    4.8,
		Reviews:   12,
		JoinDate:  "2023-09-01T00:00:00Z",
		CreatedAt: "2023-09-01T00:00:00Z",
		UpdatedAt: "2023-09-01T00:00:00Z",
	},
	{
		ID:        "user_2",
		Name:      "Anna Sidorova",
		Email:     "anna.sidorova@student.university.edu",
		Password:  "password123",
		Rating:    4.6,
		Reviews:   8,
		JoinDate:  "2023-09-15T00:00:00Z",
		CreatedAt: "2023-09-15T00:00:00Z",
		UpdatedAt: "2023-09-15T00:00:00Z",
	},
	{
		ID:        "user_3",
		Name:      "Mikhail Kozlov",
		Email:     "mikhail.kozlov@student.university.edu",
		Password:  "password123",
		Rating:    4.9,
		Reviews:   15,
		JoinDate:  "2023-08-20T00:00:00Z",
		CreatedAt: "2023-08-20T00:00:00Z",
		UpdatedAt: "2023-08-20T00:00:00Z",
	},
}

var seedListings = []model.Listing{
	{
		ID:           "listing_1",
		Title:        "Calculus Textbook, 1st Year",
		Description:  "Almost new, no notes inside.",
		Price:        500,
		Category:     model.CategoryTextbooks,
		Condition:    model.ConditionExcellent,
		SellerID:     "user_2",
		SellerName:   "Anna Sidorova",
		SellerRating: 4.6,
		Status:       model.StatusActive,
		CreatedAt:    "2024-01-10T09:00:00Z",
		UpdatedAt:    "2024-01-10T09:00:00Z",
	},
	{
		ID:           "listing_2",
		Title:        "Camera Tripod for Rent",
		Description:  "Reliable tripod, extends to 160cm. Weekly rate.",
		Price:        300,
		Category:     model.CategoryRental,
		Condition:    model.ConditionGood,
		SellerID:     "user_1",
		SellerName:   "Ivan Petrov",
		SellerRating: 4.8,
		Status:       model.StatusActive,
		CreatedAt:    "2024-01-12T14:30:00Z",
		UpdatedAt:    "2024-01-12T14:30:00Z",
	},
}
