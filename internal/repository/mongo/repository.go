package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/teeseele/journey-service/internal/domain"
	"github.com/teeseele/journey-service/internal/repository"
)

var _ repository.WellnessRepository = (*Repository)(nil)

// Collection names mirror the document-store layout: one collection per
// record type, lowercase singular.
const (
	collectionJourney        = "journey"
	collectionInteraction    = "interaction"
	collectionTea            = "tea"
	collectionRecommendation = "recommendation"
)

// Repository implements repository.WellnessRepository for MongoDB
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new MongoDB repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// EnsureIndexes creates the indexes the queries rely on: interaction lookups
// by journey and the unique tea key.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	interactions := r.client.Database().Collection(collectionInteraction)
	_, err := interactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "journey_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create interaction journey_id index: %w", err)
	}

	teas := r.client.Database().Collection(collectionTea)
	_, err = teas.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create tea key index: %w", err)
	}

	r.log.Info("MongoDB indexes ensured")
	return nil
}

// create inserts a single document and returns its id. This is the only
// write primitive the service needs.
func (r *Repository) create(ctx context.Context, collection string, document interface{}) (string, error) {
	result, err := r.client.Database().Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

// CreateJourney persists a journey and returns its document id
func (r *Repository) CreateJourney(ctx context.Context, journey *domain.Journey) (string, error) {
	return r.create(ctx, collectionJourney, journey)
}

// CreateInteraction persists an interaction and returns its document id
func (r *Repository) CreateInteraction(ctx context.Context, interaction *domain.Interaction) (string, error) {
	return r.create(ctx, collectionInteraction, interaction)
}

// ListInteractions returns all interactions for a journey in recording order
func (r *Repository) ListInteractions(ctx context.Context, journeyID string) ([]domain.Interaction, error) {
	cursor, err := r.client.Database().Collection(collectionInteraction).Find(ctx,
		bson.M{"journey_id": journeyID},
		options.Find().SetSort(bson.D{{Key: "recorded_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}

	interactions := []domain.Interaction{}
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, fmt.Errorf("failed to decode interactions: %w", err)
	}
	return interactions, nil
}

// CreateTea persists a catalog item and returns its document id
func (r *Repository) CreateTea(ctx context.Context, tea *domain.Tea) (string, error) {
	return r.create(ctx, collectionTea, tea)
}

// ListTeas returns the full catalog in seed order
func (r *Repository) ListTeas(ctx context.Context) ([]domain.Tea, error) {
	cursor, err := r.client.Database().Collection(collectionTea).Find(ctx,
		bson.D{},
		options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query teas: %w", err)
	}

	teas := []domain.Tea{}
	if err := cursor.All(ctx, &teas); err != nil {
		return nil, fmt.Errorf("failed to decode teas: %w", err)
	}
	return teas, nil
}

// HasTeas reports whether the catalog holds at least one tea
func (r *Repository) HasTeas(ctx context.Context) (bool, error) {
	count, err := r.client.Database().Collection(collectionTea).CountDocuments(ctx,
		bson.D{},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to count teas: %w", err)
	}
	return count > 0, nil
}

// CreateRecommendation persists a recommendation and returns its document id
func (r *Repository) CreateRecommendation(ctx context.Context, recommendation *domain.Recommendation) (string, error) {
	return r.create(ctx, collectionRecommendation, recommendation)
}

// Ping checks if the MongoDB connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// Close closes the MongoDB connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close(ctx)
}
