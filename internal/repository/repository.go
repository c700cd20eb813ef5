package repository

import (
	"context"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with account data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ClientRepository defines the interface for interacting with tracked clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id primitive.ObjectID, trainerID primitive.ObjectID) error // Ensure trainer owns the client
}

// AssessmentRepository defines the interface for interacting with
// measurement sessions. History listings are ordered by date ascending.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *domain.Assessment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Assessment, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assessment, error)
	GetByClientAndDate(ctx context.Context, clientID primitive.ObjectID, date time.Time) (*domain.Assessment, error)
	GetFirstByClientID(ctx context.Context, clientID primitive.ObjectID) (*domain.Assessment, error)
	GetLatestByClientID(ctx context.Context, clientID primitive.ObjectID) (*domain.Assessment, error)
	Update(ctx context.Context, assessment *domain.Assessment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) error
}

// PhotoRepository defines the interface for interacting with progress
// photo metadata.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgressPhoto, error)
	GetByAssessmentID(ctx context.Context, assessmentID primitive.ObjectID) (*domain.ProgressPhoto, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
