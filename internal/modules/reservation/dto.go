package reservation

import (
	"gearshare/internal/domain"

	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	EquipmentID int64       `json:"equipment_id" validate:"required,gt=0"`
	StartDate   domain.Date `json:"start_date"`
	EndDate     domain.Date `json:"end_date"`
}

// UpdateReservationRequest is a partial update: absent fields stay as they are.
type UpdateReservationRequest struct {
	Status   *string `json:"status,omitempty"`
	ReviewID *int64  `json:"review_id,omitempty"`
}

type EarningsSummary struct {
	OwnerUsername string          `json:"owner_username"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	Currency      string          `json:"currency"`
}

type EarningsDetail struct {
	EarningsSummary
	Reservations []domain.Reservation `json:"reservations"`
}
