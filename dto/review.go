package dto

import "brf/models"

type EditReviewInput struct {
	Rating  float64 `json:"rating"`
	Message string  `json:"message"`
}

type ReviewRows struct {
	Rows      []models.Review `json:"rows"`
	TotalPage int             `json:"total_page"`
}
