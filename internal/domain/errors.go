package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRange = errors.New("end date must be after start date")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
)

// kindError carries a client-facing message while matching one of the
// taxonomy sentinels under errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NewError returns an error with message msg that is errors.Is(kind).
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// PersistenceError marks a storage failure. The wrapped message is surfaced
// to clients as-is.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) || isTaxonomy(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func isTaxonomy(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrInvalidRange, ErrNotFound, ErrForbidden,
		ErrConflict, ErrInvalidState, ErrUnauthorized,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
