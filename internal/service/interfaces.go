package service

import (
	"context"

	"github.com/teeseele/journey-service/internal/dto"
)

// JourneyServicer defines the interface for journey operations
type JourneyServicer interface {
	StartJourney(ctx context.Context, req *dto.StartJourneyRequest) (string, error)
	RecordInteraction(ctx context.Context, req *dto.RecordInteractionRequest) (string, error)
	Analyze(ctx context.Context, journeyID string) (*dto.RecommendationResponse, error)
	SeedCatalog(ctx context.Context) (*dto.SeedCatalogResponse, error)
	Health(ctx context.Context) error
}
