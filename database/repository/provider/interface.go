// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository exposes the provider profile to the scheduling core.
// The working-hours template is owned here; the scheduling core reads it and
// never writes it.
type ProviderRepository interface {
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	GetByIDWithProjection(ctx context.Context, providerID string, projection bson.M) (*models.Provider, error)
	GetWorkingHours(ctx context.Context, providerID string) (*models.WorkingHours, error)
	UpdateWorkingHours(ctx context.Context, providerID string, hours models.WorkingHours) error
	EnsureIndexes() error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	return &mongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
}
