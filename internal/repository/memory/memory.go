// Package memory provides an in-memory WellnessRepository. It backs tests and
// storeless local development; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/teeseele/journey-service/internal/domain"
	"github.com/teeseele/journey-service/internal/repository"
)

var _ repository.WellnessRepository = (*Repository)(nil)

// Repository implements repository.WellnessRepository in memory. Interactions
// and teas are kept in insertion order, matching the ordering guarantees of
// the MongoDB adapter.
type Repository struct {
	mu              sync.RWMutex
	journeys        map[string]domain.Journey
	interactions    []domain.Interaction
	teas            []domain.Tea
	recommendations []domain.Recommendation
}

// NewRepository creates an empty in-memory repository
func NewRepository() *Repository {
	return &Repository{
		journeys: make(map[string]domain.Journey),
	}
}

// CreateJourney persists a journey and returns a generated id
func (r *Repository) CreateJourney(ctx context.Context, journey *domain.Journey) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.journeys[id] = *journey
	return id, nil
}

// CreateInteraction persists an interaction and returns a generated id
func (r *Repository) CreateInteraction(ctx context.Context, interaction *domain.Interaction) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.interactions = append(r.interactions, *interaction)
	return uuid.NewString(), nil
}

// ListInteractions returns all interactions for a journey in recording order
func (r *Repository) ListInteractions(ctx context.Context, journeyID string) ([]domain.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	interactions := []domain.Interaction{}
	for _, it := range r.interactions {
		if it.JourneyID == journeyID {
			interactions = append(interactions, it)
		}
	}
	return interactions, nil
}

// CreateTea persists a catalog item and returns a generated id
func (r *Repository) CreateTea(ctx context.Context, tea *domain.Tea) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teas = append(r.teas, *tea)
	return uuid.NewString(), nil
}

// ListTeas returns the full catalog in seed order
func (r *Repository) ListTeas(ctx context.Context) ([]domain.Tea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teas := make([]domain.Tea, len(r.teas))
	copy(teas, r.teas)
	sort.SliceStable(teas, func(i, j int) bool {
		return teas[i].Seq < teas[j].Seq
	})
	return teas, nil
}

// HasTeas reports whether the catalog holds at least one tea
func (r *Repository) HasTeas(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teas) > 0, nil
}

// CreateRecommendation persists a recommendation and returns a generated id
func (r *Repository) CreateRecommendation(ctx context.Context, recommendation *domain.Recommendation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recommendations = append(r.recommendations, *recommendation)
	return uuid.NewString(), nil
}

// Recommendations returns a copy of all persisted recommendations. Test hook.
func (r *Repository) Recommendations() []domain.Recommendation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recommendations := make([]domain.Recommendation, len(r.recommendations))
	copy(recommendations, r.recommendations)
	return recommendations
}

// Ping always succeeds for the in-memory store
func (r *Repository) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (r *Repository) Close(ctx context.Context) error {
	return nil
}
