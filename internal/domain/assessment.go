package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment is a single measurement session for a client. It is treated
// as a value object: once recorded, the calculators only ever read it.
type Assessment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  primitive.ObjectID `bson:"clientId" json:"clientId"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"` // Denormalized for easier query/auth

	Date          time.Time     `bson:"date" json:"date"`
	WeightKg      float64       `bson:"weightKg" json:"weightKg"`
	HeightCm      float64       `bson:"heightCm" json:"heightCm"`
	ActivityLevel ActivityLevel `bson:"activityLevel" json:"activityLevel"`

	Circumferences Circumferences `bson:"circumferences,omitempty" json:"circumferences,omitempty"`
	Skinfolds      Skinfolds      `bson:"skinfolds,omitempty" json:"skinfolds,omitempty"`

	// Optional progress photo, linked after the S3 upload is confirmed.
	PhotoID *primitive.ObjectID `bson:"photoId,omitempty" json:"photoId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
