package review

import "gearshare/internal/domain"

var (
	ErrRatingOutOfRange    = domain.NewError(domain.ErrInvalidInput, "Rating must be between 1 and 5")
	ErrEquipmentMismatch   = domain.NewError(domain.ErrInvalidInput, "equipment_id does not match the reservation")
	ErrMissingPrincipal    = domain.NewError(domain.ErrInvalidInput, "acting username is required")
	ErrReservationNotFound = domain.NewError(domain.ErrNotFound, "Reservation not found")
	ErrReviewNotFound      = domain.NewError(domain.ErrNotFound, "Review not found")
	ErrNotFulfilled        = domain.NewError(domain.ErrInvalidState, "Can only review returned or completed rentals")
	ErrAlreadyReviewed     = domain.NewError(domain.ErrConflict, "Review already exists for this reservation")
	ErrNotReviewer         = domain.NewError(domain.ErrForbidden, "Not authorized to modify this review")
)
