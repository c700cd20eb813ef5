package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/anthropometry"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/perimetry"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/repository"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrAssessmentAccessDenied  = errors.New("access denied to this assessment")
	ErrComparisonNeedsTwoDates = errors.New("comparison requires two distinct assessments")
	ErrPhotoNotFound           = errors.New("progress photo not found")
	ErrPhotoAlreadyLinked      = errors.New("assessment already has a progress photo")
	ErrUploadURLError          = errors.New("failed to generate upload URL")
	ErrDownloadURLError        = errors.New("failed to generate download URL")
	ErrInvalidContentType      = errors.New("invalid or missing image content type")
)

// NewAssessmentInput carries the measurements of one session.
type NewAssessmentInput struct {
	Date           time.Time
	WeightKg       float64
	HeightCm       float64
	ActivityLevel  domain.ActivityLevel
	Circumferences domain.Circumferences
	Skinfolds      domain.Skinfolds
}

// PollockBlock extends the 7-site pipeline output with the mass split.
type PollockBlock struct {
	anthropometry.Pollock7Result
	Masses anthropometry.MassSplit `json:"masses"`
}

// WaistHipBlock carries the waist-hip ratio and its risk bucket.
type WaistHipBlock struct {
	Ratio          float64 `json:"ratio"`
	Classification string  `json:"classification"`
}

// RegionSums aggregates circumferences by body region.
type RegionSums struct {
	All   float64 `json:"all"`
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

// AssessmentMetrics is the composed computation result for one session.
// It is ephemeral: computed per request, never persisted.
type AssessmentMetrics struct {
	AssessmentID string    `json:"assessmentId"`
	Date         time.Time `json:"date"`

	AgeYears int     `json:"ageYears"`
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`

	BMI               float64 `json:"bmi"`
	BMIClassification string  `json:"bmiClassification"`
	BMIColor          string  `json:"bmiColor"`

	BMR            float64                      `json:"bmr"`
	TDEE           float64                      `json:"tdee"`
	CalorieTargets anthropometry.CalorieTargets `json:"calorieTargets"`

	IdealWeightMinKg float64 `json:"idealWeightMinKg"`
	IdealWeightMaxKg float64 `json:"idealWeightMaxKg"`

	// Pollock is nil when no skinfold was measured in this session.
	Pollock *PollockBlock `json:"pollock,omitempty"`

	// WaistHip is nil when waist or hip was not measured.
	WaistHip *WaistHipBlock `json:"waistHip,omitempty"`

	RegionSums RegionSums            `json:"regionSums"`
	Radar      perimetry.RadarSeries `json:"radar"`
}

// AssessmentComparison is the longitudinal result between two sessions.
type AssessmentComparison struct {
	ClientID string    `json:"clientId"`
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	WeightFromKg  float64 `json:"weightFromKg"`
	WeightToKg    float64 `json:"weightToKg"`
	WeightDeltaKg float64 `json:"weightDeltaKg"`

	BMIFrom  float64 `json:"bmiFrom"`
	BMITo    float64 `json:"bmiTo"`
	BMIDelta float64 `json:"bmiDelta"`

	Variations map[domain.CircumferenceSite]perimetry.VariationEntry `json:"variations"`
	Radar      perimetry.ComparativeRadarSeries                      `json:"radar"`
}

// PhotoUploadURLResponse returns the presigned URL and the object key the
// caller must report back on confirm.
type PhotoUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// --- Service Interface ---
type AssessmentService interface {
	RecordAssessment(ctx context.Context, trainerID, clientID primitive.ObjectID, input NewAssessmentInput) (*domain.Assessment, error)
	GetAssessment(ctx context.Context, trainerID, assessmentID primitive.ObjectID) (*domain.Assessment, error)
	GetHistory(ctx context.Context, trainerID, clientID primitive.ObjectID) ([]domain.Assessment, error)
	DeleteAssessment(ctx context.Context, trainerID, assessmentID primitive.ObjectID) error

	ComputeMetrics(ctx context.Context, trainerID, assessmentID primitive.ObjectID) (*AssessmentMetrics, error)
	SymmetryReport(ctx context.Context, trainerID, assessmentID primitive.ObjectID) ([]perimetry.SymmetryEntry, error)
	Compare(ctx context.Context, trainerID, clientID primitive.ObjectID, fromDate, toDate time.Time) (*AssessmentComparison, error)

	RequestPhotoUploadURL(ctx context.Context, trainerID, assessmentID primitive.ObjectID, contentType string) (*PhotoUploadURLResponse, error)
	ConfirmPhotoUpload(ctx context.Context, trainerID, assessmentID primitive.ObjectID, objectKey, fileName string, fileSize int64, contentType string) (*domain.ProgressPhoto, error)
	GetPhotoDownloadURL(ctx context.Context, trainerID, assessmentID primitive.ObjectID) (string, error)
}

// --- Service Implementation ---

// assessmentService implements the AssessmentService interface.
type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	clientRepo     repository.ClientRepository
	photoRepo      repository.PhotoRepository
	fileStorage    storage.FileStorage
	now            func() time.Time // Injectable clock, used by age calculation
}

// NewAssessmentService creates a new instance of assessmentService.
func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	clientRepo repository.ClientRepository,
	photoRepo repository.PhotoRepository,
	fileStorage storage.FileStorage,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		clientRepo:     clientRepo,
		photoRepo:      photoRepo,
		fileStorage:    fileStorage,
		now:            time.Now,
	}
}

// ownedClient loads a client and enforces trainer ownership.
func (s *assessmentService) ownedClient(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if client.TrainerID != trainerID {
		return nil, ErrClientAccessDenied
	}
	return client, nil
}

// ownedAssessment loads an assessment and enforces trainer ownership.
func (s *assessmentService) ownedAssessment(ctx context.Context, trainerID, assessmentID primitive.ObjectID) (*domain.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	if assessment.TrainerID != trainerID {
		return nil, ErrAssessmentAccessDenied
	}
	return assessment, nil
}

// RecordAssessment stores a new measurement session for a client.
func (s *assessmentService) RecordAssessment(ctx context.Context, trainerID, clientID primitive.ObjectID, input NewAssessmentInput) (*domain.Assessment, error) {
	if _, err := s.ownedClient(ctx, trainerID, clientID); err != nil {
		return nil, err
	}

	assessment := &domain.Assessment{
		ClientID:       clientID,
		TrainerID:      trainerID,
		Date:           input.Date,
		WeightKg:       input.WeightKg,
		HeightCm:       input.HeightCm,
		ActivityLevel:  input.ActivityLevel,
		Circumferences: input.Circumferences,
		Skinfolds:      input.Skinfolds,
	}

	assessmentID, err := s.assessmentRepo.Create(ctx, assessment)
	if err != nil {
		return nil, err
	}
	assessment.ID = assessmentID

	return s.assessmentRepo.GetByID(ctx, assessmentID)
}

// GetAssessment retrieves a single assessment, enforcing ownership.
func (s *assessmentService) GetAssessment(ctx context.Context, trainerID, assessmentID primitive.ObjectID) (*domain.Assessment, error) {
	return s.ownedAssessment(ctx, trainerID, assessmentID)
}

// GetHistory retrieves a client's assessments ordered from oldest to newest.
func (s *assessmentService) GetHistory(ctx context.Context, trainerID, clientID primitive.ObjectID) ([]domain.Assessment, error) {
	if _, err := s.ownedClient(ctx, trainerID, clientID); err != nil {
		return nil, err
	}
	return s.assessmentRepo.GetByClientID(ctx, clientID)
}

// DeleteAssessment removes a session and its progress photo, if any.
func (s *assessmentService) DeleteAssessment(ctx context.Context, trainerID, assessmentID primitive.ObjectID) error {
	assessment, err := s.ownedAssessment(ctx, trainerID, assessmentID)
	if err != nil {
		return err
	}

	if assessment.PhotoID != nil {
		if photo, err := s.photoRepo.GetByID(ctx, *assessment.PhotoID); err == nil {
			// Best effort: losing the object is preferable to keeping the
			// assessment around just because storage is unavailable.
			_ = s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey)
			_ = s.photoRepo.Delete(ctx, photo.ID)
		}
	}

	return s.assessmentRepo.Delete(ctx, assessmentID)
}

// ComputeMetrics composes the full set of body-composition metrics for a
// single session: BMI, BMR/TDEE, calorie targets, ideal weight range,
// the Pollock-7 pipeline (when skinfolds were measured), the waist-hip
// ratio and the circumference aggregates.
func (s *assessmentService) ComputeMetrics(ctx context.Context, trainerID, assessmentID primitive.ObjectID) (*AssessmentMetrics, error) {
	assessment, err := s.ownedAssessment(ctx, trainerID, assessmentID)
	if err != nil {
		return nil, err
	}

	client, err := s.ownedClient(ctx, trainerID, assessment.ClientID)
	if err != nil {
		return nil, err
	}

	age := anthropometry.Age(client.BirthDate, s.now().UTC())
	bmi := anthropometry.BMI(assessment.WeightKg, assessment.HeightCm)
	bmr := anthropometry.BMR(assessment.WeightKg, assessment.HeightCm, age, client.Gender)
	tdee := anthropometry.TDEE(bmr, assessment.ActivityLevel)
	idealMin, idealMax := anthropometry.IdealWeightRange(assessment.HeightCm)

	metrics := &AssessmentMetrics{
		AssessmentID:      assessment.ID.Hex(),
		Date:              assessment.Date,
		AgeYears:          age,
		WeightKg:          assessment.WeightKg,
		HeightCm:          assessment.HeightCm,
		BMI:               bmi,
		BMIClassification: anthropometry.ClassifyBMI(bmi),
		BMIColor:          anthropometry.BMIColor(bmi),
		BMR:               bmr,
		TDEE:              tdee,
		CalorieTargets:    anthropometry.CalorieTargetsFor(tdee),
		IdealWeightMinKg:  idealMin,
		IdealWeightMaxKg:  idealMax,
		RegionSums: RegionSums{
			All:   perimetry.SumCircumferences(assessment.Circumferences, perimetry.RegionAll),
			Upper: perimetry.SumCircumferences(assessment.Circumferences, perimetry.RegionUpper),
			Lower: perimetry.SumCircumferences(assessment.Circumferences, perimetry.RegionLower),
		},
		Radar: perimetry.Radar(assessment.Circumferences),
	}

	if assessment.Skinfolds.Any() {
		pollock := anthropometry.Pollock7(assessment.Skinfolds, age, client.Gender)
		metrics.Pollock = &PollockBlock{
			Pollock7Result: pollock,
			Masses:         anthropometry.BodyMasses(assessment.WeightKg, pollock.PercentFat),
		}
	}

	if ratio, ok := perimetry.WaistHipRatio(assessment.Circumferences); ok {
		metrics.WaistHip = &WaistHipBlock{
			Ratio:          ratio,
			Classification: perimetry.ClassifyWaistHipRatio(ratio, client.Gender),
		}
	}

	return metrics, nil
}

// SymmetryReport analyzes the bilateral pairs of a single session.
func (s *assessmentService) SymmetryReport(ctx context.Context, trainerID, assessmentID primitive.ObjectID) ([]perimetry.SymmetryEntry, error) {
	assessment, err := s.ownedAssessment(ctx, trainerID, assessmentID)
	if err != nil {
		return nil, err
	}
	return perimetry.SymmetryReport(assessment.Circumferences), nil
}

// sessionAt resolves a comparison endpoint: the session on the given
// calendar day, or via fallback when the date is zero.
func (s *assessmentService) sessionAt(ctx context.Context, clientID primitive.ObjectID, date time.Time, fallback func(context.Context, primitive.ObjectID) (*domain.Assessment, error)) (*domain.Assessment, error) {
	var (
		assessment *domain.Assessment
		err        error
	)
	if date.IsZero() {
		assessment, err = fallback(ctx, clientID)
	} else {
		assessment, err = s.assessmentRepo.GetByClientAndDate(ctx, clientID, date)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrComparisonNeedsTwoDates
		}
		return nil, err
	}
	return assessment, nil
}

// Compare derives the longitudinal differences between the sessions
// recorded on two dates: weight and BMI deltas, per-site circumference
// variation and the comparative radar series. A zero fromDate selects the
// client's first session and a zero toDate the latest one, so callers get
// the whole-journey comparison by default.
func (s *assessmentService) Compare(ctx context.Context, trainerID, clientID primitive.ObjectID, fromDate, toDate time.Time) (*AssessmentComparison, error) {
	if _, err := s.ownedClient(ctx, trainerID, clientID); err != nil {
		return nil, err
	}

	prev, err := s.sessionAt(ctx, clientID, fromDate, s.assessmentRepo.GetFirstByClientID)
	if err != nil {
		return nil, err
	}
	curr, err := s.sessionAt(ctx, clientID, toDate, s.assessmentRepo.GetLatestByClientID)
	if err != nil {
		return nil, err
	}

	if prev.ID == curr.ID || curr.Date.Before(prev.Date) {
		return nil, ErrComparisonNeedsTwoDates
	}

	// BMI deltas use the current height for both sessions so the delta
	// reflects weight change, not a re-measured height.
	bmiFrom := anthropometry.BMI(prev.WeightKg, curr.HeightCm)
	bmiTo := anthropometry.BMI(curr.WeightKg, curr.HeightCm)

	return &AssessmentComparison{
		ClientID:      clientID.Hex(),
		FromDate:      prev.Date,
		ToDate:        curr.Date,
		WeightFromKg:  prev.WeightKg,
		WeightToKg:    curr.WeightKg,
		WeightDeltaKg: curr.WeightKg - prev.WeightKg,
		BMIFrom:       bmiFrom,
		BMITo:         bmiTo,
		BMIDelta:      bmiTo - bmiFrom,
		Variations:    perimetry.Variation(prev.Circumferences, curr.Circumferences),
		Radar:         perimetry.ComparativeRadar(prev.Circumferences, curr.Circumferences),
	}, nil
}

// === Progress Photo Upload Process ===

// RequestPhotoUploadURL generates a presigned URL for uploading a
// progress photo for an assessment.
func (s *assessmentService) RequestPhotoUploadURL(ctx context.Context, trainerID, assessmentID primitive.ObjectID, contentType string) (*PhotoUploadURLResponse, error) {
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, ErrInvalidContentType
	}

	assessment, err := s.ownedAssessment(ctx, trainerID, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.PhotoID != nil {
		return nil, ErrPhotoAlreadyLinked
	}

	// Unique object key per upload attempt
	uniqueID := uuid.NewString()
	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("photos", assessment.ClientID.Hex(), assessmentID.Hex(), fmt.Sprintf("%s.%s", uniqueID, fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &PhotoUploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// ConfirmPhotoUpload creates the photo metadata record and links it to
// the assessment. Called AFTER the file was uploaded via the presigned URL.
func (s *assessmentService) ConfirmPhotoUpload(ctx context.Context, trainerID, assessmentID primitive.ObjectID, objectKey, fileName string, fileSize int64, contentType string) (*domain.ProgressPhoto, error) {
	if objectKey == "" {
		return nil, errors.New("object key is required")
	}

	assessment, err := s.ownedAssessment(ctx, trainerID, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.PhotoID != nil {
		return nil, ErrPhotoAlreadyLinked
	}

	photo := &domain.ProgressPhoto{
		AssessmentID: assessmentID,
		ClientID:     assessment.ClientID,
		TrainerID:    trainerID,
		S3ObjectKey:  objectKey,
		FileName:     fileName,
		ContentType:  contentType,
		Size:         fileSize,
	}

	photoID, err := s.photoRepo.Create(ctx, photo)
	if err != nil {
		return nil, err
	}
	photo.ID = photoID

	assessment.PhotoID = &photoID
	if err := s.assessmentRepo.Update(ctx, assessment); err != nil {
		return nil, err
	}

	return photo, nil
}

// GetPhotoDownloadURL generates a temporary URL for viewing the photo
// linked to an assessment.
func (s *assessmentService) GetPhotoDownloadURL(ctx context.Context, trainerID, assessmentID primitive.ObjectID) (string, error) {
	assessment, err := s.ownedAssessment(ctx, trainerID, assessmentID)
	if err != nil {
		return "", err
	}

	if assessment.PhotoID == nil || *assessment.PhotoID == primitive.NilObjectID {
		return "", ErrPhotoNotFound
	}

	photo, err := s.photoRepo.GetByID(ctx, *assessment.PhotoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrPhotoNotFound
		}
		return "", err
	}

	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, photo.S3ObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}

	return downloadURL, nil
}
