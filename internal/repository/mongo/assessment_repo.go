package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assessmentCollectionName = "assessments"

// mongoAssessmentRepository implements the repository.AssessmentRepository interface using MongoDB.
type mongoAssessmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAssessmentRepository creates a new instance of mongoAssessmentRepository.
func NewMongoAssessmentRepository(db *mongo.Database) repository.AssessmentRepository {
	return &mongoAssessmentRepository{
		collection: db.Collection(assessmentCollectionName),
	}
}

// Create inserts a new assessment record.
func (r *mongoAssessmentRepository) Create(ctx context.Context, assessment *domain.Assessment) (primitive.ObjectID, error) {
	if assessment.ClientID == primitive.NilObjectID || assessment.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client ID and trainer ID are required")
	}
	if assessment.Date.IsZero() {
		assessment.Date = time.Now().UTC()
	}

	assessment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	assessment.CreatedAt = now
	assessment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves an assessment by its MongoDB ObjectID.
func (r *mongoAssessmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Assessment, error) {
	var assessment domain.Assessment
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&assessment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

// GetByClientID retrieves the full measurement history of a client,
// ordered from the oldest to the most recent assessment.
func (r *mongoAssessmentRepository) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assessment, error) {
	filter := bson.M{"clientId": clientID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []domain.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return assessments, nil
}

// GetByClientAndDate retrieves the assessment recorded for a client on a
// specific calendar day.
func (r *mongoAssessmentRepository) GetByClientAndDate(ctx context.Context, clientID primitive.ObjectID, date time.Time) (*domain.Assessment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := bson.M{
		"clientId": clientID,
		"date":     bson.M{"$gte": dayStart, "$lt": dayEnd},
	}

	var assessment domain.Assessment
	err := r.collection.FindOne(ctx, filter).Decode(&assessment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

// getOneSorted returns the single assessment of a client at the given
// date sort order (1 for oldest, -1 for newest).
func (r *mongoAssessmentRepository) getOneSorted(ctx context.Context, clientID primitive.ObjectID, order int) (*domain.Assessment, error) {
	filter := bson.M{"clientId": clientID}
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: order}})

	var assessment domain.Assessment
	err := r.collection.FindOne(ctx, filter, opts).Decode(&assessment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

// GetFirstByClientID retrieves a client's oldest assessment.
func (r *mongoAssessmentRepository) GetFirstByClientID(ctx context.Context, clientID primitive.ObjectID) (*domain.Assessment, error) {
	return r.getOneSorted(ctx, clientID, 1)
}

// GetLatestByClientID retrieves a client's most recent assessment.
func (r *mongoAssessmentRepository) GetLatestByClientID(ctx context.Context, clientID primitive.ObjectID) (*domain.Assessment, error) {
	return r.getOneSorted(ctx, clientID, -1)
}

// Update replaces the measurement fields and photo link of an assessment.
func (r *mongoAssessmentRepository) Update(ctx context.Context, assessment *domain.Assessment) error {
	filter := bson.M{"_id": assessment.ID}
	update := bson.M{
		"$set": bson.M{
			"weightKg":       assessment.WeightKg,
			"heightCm":       assessment.HeightCm,
			"activityLevel":  assessment.ActivityLevel,
			"circumferences": assessment.Circumferences,
			"skinfolds":      assessment.Skinfolds,
			"photoId":        assessment.PhotoID,
			"updatedAt":      time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a single assessment.
func (r *mongoAssessmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByClientID removes every assessment of a client. Used when the
// client record itself is deleted.
func (r *mongoAssessmentRepository) DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"clientId": clientID})
	return err
}

// EnsureAssessmentIndexes creates necessary indexes for the assessments collection.
func EnsureAssessmentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
