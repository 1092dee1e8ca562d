package roomRepo

import (
	"context"

	"studyrooms/models"
)

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	// Upsert inserts or fully replaces a room record keyed by its ID.
	Upsert(ctx context.Context, room models.Room) error
	// UpsertAll persists a scrape run's batch, aborting on the first failure.
	UpsertAll(ctx context.Context, rooms []models.Room) error
	// GetAll retrieves all room records.
	GetAll(ctx context.Context) ([]models.Room, error)
}
