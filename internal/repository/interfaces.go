package repository

import (
	"context"

	"github.com/teeseele/journey-service/internal/domain"
)

// WellnessRepository defines the interface for document storage operations.
// It is a typed facade over a document store: every method maps onto a
// single-collection create or an exact-match field query.
type WellnessRepository interface {
	// CreateJourney persists a journey and returns its document id.
	CreateJourney(ctx context.Context, journey *domain.Journey) (string, error)

	// CreateInteraction persists an interaction and returns its document id.
	CreateInteraction(ctx context.Context, interaction *domain.Interaction) (string, error)

	// ListInteractions returns all interactions recorded for a journey in
	// recording order. An unknown journey yields an empty slice, not an error.
	ListInteractions(ctx context.Context, journeyID string) ([]domain.Interaction, error)

	// CreateTea persists a catalog item and returns its document id.
	CreateTea(ctx context.Context, tea *domain.Tea) (string, error)

	// ListTeas returns the full catalog in seed order.
	ListTeas(ctx context.Context) ([]domain.Tea, error)

	// HasTeas reports whether the catalog holds at least one tea.
	HasTeas(ctx context.Context) (bool, error)

	// CreateRecommendation persists a recommendation and returns its document id.
	CreateRecommendation(ctx context.Context, recommendation *domain.Recommendation) (string, error)

	// Ping checks if the store connection is alive.
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources.
	Close(ctx context.Context) error
}
