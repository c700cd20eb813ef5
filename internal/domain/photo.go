package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressPhoto holds the metadata of a photo taken during an assessment.
// The file itself lives in S3-compatible object storage.
type ProgressPhoto struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssessmentID primitive.ObjectID `bson:"assessmentId" json:"assessmentId"`
	ClientID     primitive.ObjectID `bson:"clientId" json:"clientId"`
	TrainerID    primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	S3ObjectKey  string             `bson:"s3ObjectKey" json:"-"` // Internal storage key
	FileName     string             `bson:"fileName" json:"fileName"`
	ContentType  string             `bson:"contentType" json:"contentType"`
	Size         int64              `bson:"size" json:"size"`
	UploadedAt   time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
