package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID               int64     `json:"review_id" gorm:"column:review_id;primaryKey;autoIncrement"`
	ReservationID    int64     `json:"reservation_id" gorm:"column:reservation_id;uniqueIndex;not null"`
	EquipmentID      int64     `json:"equipment_id" gorm:"column:equipment_id;index;not null"`
	ReviewerUsername string    `json:"reviewer_username" gorm:"column:reviewer_username;size:255;index;not null"`
	OwnerUsername    string    `json:"owner_username" gorm:"column:owner_username;size:255;index;not null"`
	Rating           int       `json:"rating" gorm:"column:rating;not null"`
	Comment          *string   `json:"comment,omitempty" gorm:"column:comment;type:text"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Review) TableName() string { return "reviews" }

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
