package partners

import "errors"

// ErrPartnerNotFound is returned when no partner matches the requested id
var ErrPartnerNotFound = errors.New("partner not found")

// IsTransportFailure reports whether err came from reaching the backend
// rather than from a missing partner.
func IsTransportFailure(err error) bool {
	return err != nil && !errors.Is(err, ErrPartnerNotFound)
}
