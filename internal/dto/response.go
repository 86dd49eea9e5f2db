package dto

import "github.com/teeseele/journey-service/internal/domain"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"journey_id required"`
}

// StartJourneyResponse represents a successful journey creation response
type StartJourneyResponse struct {
	JourneyID string `json:"journey_id" example:"665f1c2e9b3d4a0001a3b901"`
}

// RecordInteractionResponse represents a successful interaction recording response
type RecordInteractionResponse struct {
	InteractionID string `json:"interaction_id" example:"665f1d489b3d4a0001a3b902"`
}

// RecommendationResponse represents the result of one analysis run
type RecommendationResponse struct {
	JourneyID string         `json:"journey_id" example:"665f1c2e9b3d4a0001a3b901"`
	Profile   domain.Profile `json:"profile"`
	Teas      []string       `json:"teas" example:"chamomile,lavender,lemonbalm"`
}

// SeedCatalogResponse represents the outcome of a catalog seeding request
type SeedCatalogResponse struct {
	Status string `json:"status" example:"seeded"`
	Count  int    `json:"count,omitempty" example:"4"`
}
