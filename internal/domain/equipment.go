package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentUnavailable EquipmentStatus = "unavailable"
	EquipmentReserved    EquipmentStatus = "reserved"
	EquipmentBooked      EquipmentStatus = "booked"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentUnavailable, EquipmentReserved, EquipmentBooked:
		return true
	}
	return false
}

type Equipment struct {
	ID             int64           `json:"equipment_id" gorm:"column:equipment_id;primaryKey;autoIncrement"`
	OwnerUsername  string          `json:"owner_username" gorm:"column:owner_username;size:255;index;not null"`
	Name           string          `json:"name" gorm:"column:name;not null"`
	Category       string          `json:"category" gorm:"column:category;index"`
	DailyPrice     decimal.Decimal `json:"daily_price" gorm:"column:daily_price;type:numeric(10,2);not null"`
	PhotoURL       *string         `json:"photo_url,omitempty" gorm:"column:photo_url"`
	PhotoBinary    *string         `json:"photo_binary,omitempty" gorm:"column:photo_binary;type:text"`
	PickupLocation string          `json:"pickup_location" gorm:"column:pickup_location"`
	Status         EquipmentStatus `json:"status" gorm:"column:status;size:20;index"`
	BookedUntil    *Date           `json:"booked_until,omitempty" gorm:"column:booked_until"`
	RatingAvg      float64         `json:"rating_avg" gorm:"column:rating_avg"`
	RatingCount    int             `json:"rating_count" gorm:"column:rating_count"`
	CreatedAt      time.Time       `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"column:updated_at"`

	Owner *User `json:"-" gorm:"foreignKey:OwnerUsername;references:Username;constraint:OnDelete:CASCADE"`
}

func (Equipment) TableName() string { return "equipment" }

// SetPhotoBinary stores inline photo bytes and drops any URL reference.
func (e *Equipment) SetPhotoBinary(encoded string) {
	e.PhotoBinary = &encoded
	e.PhotoURL = nil
}

// SetPhotoURL stores a URL reference and drops any inline bytes.
func (e *Equipment) SetPhotoURL(url string) {
	e.PhotoURL = &url
	e.PhotoBinary = nil
}
