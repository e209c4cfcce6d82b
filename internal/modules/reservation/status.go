package reservation

import "strings"

// ValidateStatus is the single gate every reservation status change passes
// through. Any non-blank value is accepted; no transition table is enforced.
func ValidateStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrBlankStatus
	}
	return nil
}
