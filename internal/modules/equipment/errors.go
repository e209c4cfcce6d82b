package equipment

import (
	"fmt"

	"gearshare/internal/domain"
)

const MaxPhotoSize = 10 << 20

var (
	ErrEquipmentNotFound = domain.NewError(domain.ErrNotFound, "Equipment not found")
	ErrOwnerNotFound     = domain.NewError(domain.ErrNotFound, "Owner not found")
	ErrMissingPrincipal  = domain.NewError(domain.ErrInvalidInput, "owner_username is required")
	ErrMissingFields     = domain.NewError(domain.ErrInvalidInput, "name, category, daily_price and pickup_location are required")
	ErrInvalidPrice      = domain.NewError(domain.ErrInvalidInput, "daily_price must be greater than zero")
	ErrInvalidStatus     = domain.NewError(domain.ErrInvalidInput, "status must be one of available, unavailable, reserved, booked")
	ErrPhotoTooLarge     = domain.NewError(domain.ErrInvalidInput, fmt.Sprintf("photo exceeds %d bytes", MaxPhotoSize))
	ErrNotOwner          = domain.NewError(domain.ErrForbidden, "Not authorized to modify this equipment")
)
