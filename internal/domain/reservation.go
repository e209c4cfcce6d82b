package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationReturned  = "returned"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// FulfilledStatuses are the terminal states after which a rental may be
// reviewed and counts toward owner earnings.
var FulfilledStatuses = []string{ReservationReturned, ReservationCompleted}

func IsFulfilled(status string) bool {
	for _, s := range FulfilledStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID               int64           `json:"reservation_id" gorm:"column:reservation_id;primaryKey;autoIncrement"`
	EquipmentID      int64           `json:"equipment_id" gorm:"column:equipment_id;index;not null"`
	OwnerUsername    string          `json:"owner_username" gorm:"column:owner_username;size:255;index;not null"`
	ReserverUsername string          `json:"reserver_username" gorm:"column:reserver_username;size:255;index;not null"`
	Status           string          `json:"status" gorm:"column:status;size:30;index;not null"`
	StartDate        Date            `json:"start_date" gorm:"column:start_date;not null"`
	EndDate          Date            `json:"end_date" gorm:"column:end_date;not null"`
	PerDayPrice      decimal.Decimal `json:"per_day_price" gorm:"column:per_day_price;type:numeric(10,2);not null"`
	TotalPrice       decimal.Decimal `json:"total_price" gorm:"column:total_price;type:numeric(12,2);not null"`
	ReviewID         *int64          `json:"review_id,omitempty" gorm:"column:review_id"`
	CreatedAt        time.Time       `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time       `json:"updated_at" gorm:"column:updated_at"`
}

func (Reservation) TableName() string { return "reservations" }

// Days is the number of whole calendar days the rental spans.
func (r *Reservation) Days() int {
	return r.StartDate.DaysUntil(r.EndDate)
}
