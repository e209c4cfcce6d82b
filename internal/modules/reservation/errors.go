package reservation

import "gearshare/internal/domain"

var (
	ErrEquipmentNotFound   = domain.NewError(domain.ErrNotFound, "equipment not found")
	ErrReservationNotFound = domain.NewError(domain.ErrNotFound, "reservation not found")
	ErrInvalidRange        = domain.NewError(domain.ErrInvalidRange, "end date must be after start date")
	ErrMissingDates        = domain.NewError(domain.ErrInvalidInput, "start_date and end_date are required")
	ErrMissingPrincipal    = domain.NewError(domain.ErrInvalidInput, "acting username is required")
	ErrBlankStatus         = domain.NewError(domain.ErrInvalidInput, "status must not be blank")
	ErrNotParty            = domain.NewError(domain.ErrForbidden, "not authorized to update this reservation")
	ErrNotReserver         = domain.NewError(domain.ErrForbidden, "only reserver can delete reservation")
	ErrNotPending          = domain.NewError(domain.ErrInvalidState, "can only delete pending reservations")
)
