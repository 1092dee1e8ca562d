package roomRepo

import (
	"context"
	"fmt"
	"time"

	"studyrooms/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert inserts or fully replaces a room document keyed by its room
// ID. Replacement (not merge) is deliberate: a fresh scrape's block
// list supersedes whatever was stored before.
func (r *MongoRoomRepo) Upsert(ctx context.Context, room models.Room) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": room.ID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.coll.ReplaceOne(ctx, filter, room, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert room %d: %w", room.ID, err)
	}
	return nil
}

// UpsertAll persists one scrape run's batch of rooms, stopping at the
// first failure so a broken sink surfaces as a run failure instead of
// a silently partial write.
func (r *MongoRoomRepo) UpsertAll(ctx context.Context, rooms []models.Room) error {
	for _, room := range rooms {
		if err := r.Upsert(ctx, room); err != nil {
			return err
		}
	}
	return nil
}

// GetAll retrieves every room document, without the storage-internal
// _id field.
func (r *MongoRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}
