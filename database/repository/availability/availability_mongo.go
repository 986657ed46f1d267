package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository on the "availability" collection.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

func NewMongoAvailabilityRepo(db *mongo.Database) *MongoAvailabilityRepo {
	return &MongoAvailabilityRepo{coll: db.Collection("availability")}
}

func (r *MongoAvailabilityRepo) Get(ctx context.Context, doctorID, date string) (*models.AvailabilityOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o models.AvailabilityOverride
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID, "date": date}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability for doctor %s on %s: %w", doctorID, date, err)
	}
	return &o, nil
}

func (r *MongoAvailabilityRepo) Upsert(ctx context.Context, override *models.AvailabilityOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": override.DoctorID, "date": override.Date}
	_, err := r.coll.ReplaceOne(ctx, filter, override, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert availability: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	defer cursor.Close(ctx)

	overrides := []models.AvailabilityOverride{}
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("failed to decode availability: %w", err)
	}
	return overrides, nil
}

// EnsureIndexes creates the unique (doctorId, date) index backing upserts.
func (r *MongoAvailabilityRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("doctor_date_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
