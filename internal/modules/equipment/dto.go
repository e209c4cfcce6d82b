package equipment

import (
	"gearshare/internal/domain"

	"github.com/shopspring/decimal"
)

// EquipmentRequest is the JSON body for create and update. On update every
// field is optional.
type EquipmentRequest struct {
	Name           *string                 `json:"name,omitempty"`
	Category       *string                 `json:"category,omitempty"`
	DailyPrice     *decimal.Decimal        `json:"daily_price,omitempty"`
	PickupLocation *string                 `json:"pickup_location,omitempty"`
	PhotoURL       *string                 `json:"photo_url,omitempty"`
	Status         *domain.EquipmentStatus `json:"status,omitempty"`
	BookedUntil    *domain.Date            `json:"booked_until,omitempty"`
}

func (r EquipmentRequest) patch() EquipmentPatch {
	return EquipmentPatch{
		Name:           r.Name,
		Category:       r.Category,
		DailyPrice:     r.DailyPrice,
		PickupLocation: r.PickupLocation,
		PhotoURL:       r.PhotoURL,
		Status:         r.Status,
		BookedUntil:    r.BookedUntil,
	}
}
