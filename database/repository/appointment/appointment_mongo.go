package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/database/repository"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository on the "appointments" collection.
// Slot exclusivity is enforced by the unique partial index created in EnsureIndexes.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepo(db *mongo.Database) *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: db.Collection("appointments")}
}

var sortBySlot = bson.D{{Key: "date", Value: 1}, {Key: "startMinute", Value: 1}, {Key: "createdAt", Value: 1}}

func (r *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	appt.Active = appt.Status.Active()
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.classifyDuplicate(ctx, appt.ID, err)
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	q := bson.M{}
	if filter.DoctorID != "" {
		q["doctorId"] = filter.DoctorID
	}
	if filter.PatientID != "" {
		q["patientId"] = filter.PatientID
	}
	if filter.Date != "" {
		q["date"] = filter.Date
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	return r.find(ctx, q)
}

func (r *MongoAppointmentRepo) ListActiveByDoctorDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID, "date": date, "active": true})
}

func (r *MongoAppointmentRepo) Transition(ctx context.Context, id string, from []models.AppointmentStatus, update models.AppointmentUpdate) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": bson.M{"$in": from}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": updateDocument(update)}, opts).Decode(&updated)
	switch {
	case err == nil:
		return &updated, nil
	case mongo.IsDuplicateKeyError(err):
		return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrSlotTaken)
	case errors.Is(err, mongo.ErrNoDocuments):
		// Either the id is unknown or its status is no longer in from.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrStaleState)
	default:
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
}

func (r *MongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sortBySlot))
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// classifyDuplicate separates an id collision from a slot collision.
func (r *MongoAppointmentRepo) classifyDuplicate(ctx context.Context, id string, cause error) error {
	if _, err := r.GetByID(ctx, id); err == nil {
		return fmt.Errorf("appointment %s: %w", id, repository.ErrDuplicate)
	}
	return fmt.Errorf("%v: %w", cause, repository.ErrSlotTaken)
}

// updateDocument converts the set fields of u into a $set document.
func updateDocument(u models.AppointmentUpdate) bson.M {
	set := bson.M{"updatedAt": u.UpdatedAt}
	if u.Status != nil {
		set["status"] = *u.Status
		set["active"] = u.Status.Active()
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.StartMinute != nil {
		set["startMinute"] = *u.StartMinute
	}
	if u.Time != nil {
		set["time"] = *u.Time
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	if u.CancelReason != nil {
		set["cancelReason"] = *u.CancelReason
	}
	if u.CancelledAt != nil {
		set["cancelledAt"] = *u.CancelledAt
	}
	if u.RescheduledAt != nil {
		set["rescheduledAt"] = *u.RescheduledAt
	}
	if u.CompletedAt != nil {
		set["completedAt"] = *u.CompletedAt
	}
	return set
}
