package service

import "errors"

// Validation failures surfaced to the HTTP boundary as 400s. Everything else
// a service method returns is a store failure and maps to 500.
var (
	ErrConsentRequired   = errors.New("consent required to proceed")
	ErrJourneyIDRequired = errors.New("journey_id required")
)
