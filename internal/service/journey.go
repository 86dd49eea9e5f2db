package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teeseele/journey-service/internal/catalog"
	"github.com/teeseele/journey-service/internal/domain"
	"github.com/teeseele/journey-service/internal/dto"
	"github.com/teeseele/journey-service/internal/needs"
	"github.com/teeseele/journey-service/internal/repository"
)

// defaultGuideName is the guide character assigned when the client does not
// pick one.
const defaultGuideName = "Auri"

var _ JourneyServicer = (*JourneyService)(nil)

// JourneyService orchestrates journeys, interactions and recommendations over
// the document store.
type JourneyService struct {
	repository repository.WellnessRepository
	log        *zap.Logger
}

// NewJourneyService creates a new journey service
func NewJourneyService(repo repository.WellnessRepository, log *zap.Logger) *JourneyService {
	return &JourneyService{
		repository: repo,
		log:        log,
	}
}

// StartJourney creates a journey after the consent gate. A journey only ever
// exists with consent given; interactions can therefore trust their journey.
func (s *JourneyService) StartJourney(ctx context.Context, req *dto.StartJourneyRequest) (string, error) {
	if !req.Consent {
		s.log.Warn("Journey rejected: consent not given")
		return "", ErrConsentRequired
	}

	journey := &domain.Journey{
		Consent:   true,
		GuideName: req.GuideName,
		Device:    req.Device,
	}
	if journey.GuideName == "" {
		journey.GuideName = defaultGuideName
	}

	journeyID, err := s.repository.CreateJourney(ctx, journey)
	if err != nil {
		return "", fmt.Errorf("failed to create journey: %w", err)
	}

	s.log.Info("Journey started",
		zap.String("journey_id", journeyID),
		zap.String("guide_name", journey.GuideName))

	return journeyID, nil
}

// RecordInteraction appends one interaction to a journey
func (s *JourneyService) RecordInteraction(ctx context.Context, req *dto.RecordInteractionRequest) (string, error) {
	if req.JourneyID == "" {
		return "", ErrJourneyIDRequired
	}

	interaction := &domain.Interaction{
		JourneyID:  req.JourneyID,
		Type:       domain.InteractionType(req.Type),
		Value:      req.Value,
		RecordedAt: time.Now().UTC(),
	}

	interactionID, err := s.repository.CreateInteraction(ctx, interaction)
	if err != nil {
		return "", fmt.Errorf("failed to record interaction: %w", err)
	}

	s.log.Info("Interaction recorded",
		zap.String("interaction_id", interactionID),
		zap.String("journey_id", req.JourneyID),
		zap.String("type", req.Type))

	return interactionID, nil
}

// Analyze computes the needs profile from a journey's interactions, ranks the
// catalog against it, persists the recommendation and returns it. A journey
// with zero interactions still yields a valid all-zero profile.
func (s *JourneyService) Analyze(ctx context.Context, journeyID string) (*dto.RecommendationResponse, error) {
	if journeyID == "" {
		return nil, ErrJourneyIDRequired
	}

	interactions, err := s.repository.ListInteractions(ctx, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions: %w", err)
	}

	profile := needs.BuildProfile(interactions)

	teas, err := s.repository.ListTeas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tea catalog: %w", err)
	}

	teaKeys := needs.RankTeas(profile, teas)

	recommendation := &domain.Recommendation{
		JourneyID: journeyID,
		Profile:   profile,
		Teas:      teaKeys,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.repository.CreateRecommendation(ctx, recommendation); err != nil {
		return nil, fmt.Errorf("failed to persist recommendation: %w", err)
	}

	s.log.Info("Recommendation computed",
		zap.String("journey_id", journeyID),
		zap.Int("interactions", len(interactions)),
		zap.Strings("teas", teaKeys))

	return &dto.RecommendationResponse{
		JourneyID: journeyID,
		Profile:   profile,
		Teas:      teaKeys,
	}, nil
}

// SeedCatalog loads the static tea catalog once. Re-seeding a non-empty
// catalog is a no-op.
func (s *JourneyService) SeedCatalog(ctx context.Context) (*dto.SeedCatalogResponse, error) {
	exists, err := s.repository.HasTeas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check tea catalog: %w", err)
	}
	if exists {
		return &dto.SeedCatalogResponse{Status: "exists"}, nil
	}

	teas := catalog.Default()
	for i := range teas {
		if _, err := s.repository.CreateTea(ctx, &teas[i]); err != nil {
			return nil, fmt.Errorf("failed to seed tea %q: %w", teas[i].Key, err)
		}
	}

	s.log.Info("Tea catalog seeded", zap.Int("count", len(teas)))

	return &dto.SeedCatalogResponse{Status: "seeded", Count: len(teas)}, nil
}

// Health reports whether the store is reachable
func (s *JourneyService) Health(ctx context.Context) error {
	return s.repository.Ping(ctx)
}
