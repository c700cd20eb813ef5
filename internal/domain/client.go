package domain

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender is one of exactly two recognized tokens. Anything else is rejected
// at the boundary (ParseGender) instead of silently falling into one of the
// formula branches.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var ErrUnknownGender = errors.New("gender must be 'male' or 'female'")

// ParseGender normalizes and validates a gender token.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", ErrUnknownGender
	}
}

// Client represents a tracked individual owned by a trainer.
// The measurement history lives in the assessments collection.
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Gender    Gender             `bson:"gender" json:"gender"`
	BirthDate time.Time          `bson:"birthDate" json:"birthDate"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
