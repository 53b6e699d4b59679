package booking

import "errors"

var (
	ErrOfferingNotFound = errors.New("offering not found")
	ErrSessionNotFound  = errors.New("selection session not found or expired")
)
