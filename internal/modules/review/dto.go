package review

import "gearshare/internal/domain"

type CreateReviewRequest struct {
	ReservationID int64   `json:"reservation_id" validate:"required,gt=0"`
	EquipmentID   int64   `json:"equipment_id,omitempty" validate:"gte=0"`
	Rating        int     `json:"rating"`
	Comment       *string `json:"comment,omitempty"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type OwnerSummary struct {
	OwnerUsername string          `json:"owner_username"`
	AverageRating float64         `json:"average_rating"`
	TotalReviews  int             `json:"total_reviews"`
	Histogram     map[int]int     `json:"rating_distribution,omitempty"`
	Reviews       []domain.Review `json:"reviews,omitempty"`
}
