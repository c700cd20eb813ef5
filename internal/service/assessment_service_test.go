package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/anthropometry"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/perimetry"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type assessmentFixture struct {
	svc            service.AssessmentService
	clientRepo     *fakeClientRepo
	assessmentRepo *fakeAssessmentRepo
	photoRepo      *fakePhotoRepo
	storage        *fakeStorage

	trainerID primitive.ObjectID
	clientID  primitive.ObjectID
}

func newAssessmentFixture(t *testing.T, gender domain.Gender) *assessmentFixture {
	t.Helper()

	f := &assessmentFixture{
		clientRepo:     newFakeClientRepo(),
		assessmentRepo: newFakeAssessmentRepo(),
		photoRepo:      newFakePhotoRepo(),
		storage:        &fakeStorage{},
		trainerID:      primitive.NewObjectID(),
	}
	f.svc = service.NewAssessmentService(f.assessmentRepo, f.clientRepo, f.photoRepo, f.storage)

	clientID, err := f.clientRepo.Create(context.Background(), &domain.Client{
		TrainerID: f.trainerID,
		Name:      "Client Under Test",
		Gender:    gender,
		BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	f.clientID = clientID

	return f
}

func (f *assessmentFixture) record(t *testing.T, input service.NewAssessmentInput) *domain.Assessment {
	t.Helper()
	a, err := f.svc.RecordAssessment(context.Background(), f.trainerID, f.clientID, input)
	require.NoError(t, err)
	return a
}

func fullSkinfolds() domain.Skinfolds {
	return domain.Skinfolds{
		domain.SkinfoldChest:       10,
		domain.SkinfoldMidaxillary: 12,
		domain.SkinfoldTriceps:     14,
		domain.SkinfoldSubscapular: 16,
		domain.SkinfoldAbdominal:   20,
		domain.SkinfoldSuprailiac:  13,
		domain.SkinfoldThigh:       15,
	}
}

func TestComputeMetricsFullSession(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)

	a := f.record(t, service.NewAssessmentInput{
		Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: domain.ActivityModerate,
		Circumferences: domain.Circumferences{
			domain.SiteWaist:           80,
			domain.SiteHip:             100,
			domain.SiteChest:           101,
			domain.SiteRightArmRelaxed: 31,
			domain.SiteLeftArmRelaxed:  30.5,
			domain.SiteRightUpperThigh: 58,
			domain.SiteLeftUpperThigh:  57.5,
		},
		Skinfolds: fullSkinfolds(),
	})

	metrics, err := f.svc.ComputeMetrics(context.Background(), f.trainerID, a.ID)
	require.NoError(t, err)

	// The composed values must match the standalone calculators.
	age := anthropometry.Age(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), time.Now().UTC())
	bmr := anthropometry.BMR(70, 175, age, domain.GenderMale)
	tdee := anthropometry.TDEE(bmr, domain.ActivityModerate)

	assert.Equal(t, age, metrics.AgeYears)
	assert.Equal(t, 22.86, metrics.BMI)
	assert.Equal(t, "Normal", metrics.BMIClassification)
	assert.Equal(t, "#2ecc71", metrics.BMIColor)
	assert.Equal(t, bmr, metrics.BMR)
	assert.Equal(t, tdee, metrics.TDEE)
	assert.Equal(t, anthropometry.CalorieTargetsFor(tdee), metrics.CalorieTargets)
	assert.Equal(t, 56.7, metrics.IdealWeightMinKg)
	assert.Equal(t, 76.3, metrics.IdealWeightMaxKg)

	require.NotNil(t, metrics.Pollock)
	assert.Equal(t, 100.0, metrics.Pollock.SumSkinfoldsMm)
	expected := anthropometry.Pollock7(fullSkinfolds(), age, domain.GenderMale)
	assert.Equal(t, expected, metrics.Pollock.Pollock7Result)
	assert.Equal(t, anthropometry.BodyMasses(70, expected.PercentFat), metrics.Pollock.Masses)

	require.NotNil(t, metrics.WaistHip)
	assert.Equal(t, 0.8, metrics.WaistHip.Ratio)
	assert.Equal(t, "Low risk", metrics.WaistHip.Classification)

	assert.Equal(t, 458.0, metrics.RegionSums.All)
	assert.Len(t, metrics.Radar.Categories, 10)
}

func TestComputeMetricsWithoutSkinfoldsOrWaist(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderFemale)

	a := f.record(t, service.NewAssessmentInput{
		Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		WeightKg:      62,
		HeightCm:      165,
		ActivityLevel: domain.ActivityLight,
		Circumferences: domain.Circumferences{
			domain.SiteHip: 98, // waist not measured
		},
	})

	metrics, err := f.svc.ComputeMetrics(context.Background(), f.trainerID, a.ID)
	require.NoError(t, err)

	assert.Nil(t, metrics.Pollock)
	assert.Nil(t, metrics.WaistHip)
	assert.Equal(t, 98.0, metrics.RegionSums.All)
}

func TestComputeMetricsAccessDenied(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)
	a := f.record(t, service.NewAssessmentInput{WeightKg: 70, HeightCm: 175})

	otherTrainer := primitive.NewObjectID()
	_, err := f.svc.ComputeMetrics(context.Background(), otherTrainer, a.ID)
	assert.ErrorIs(t, err, service.ErrAssessmentAccessDenied)

	_, err = f.svc.ComputeMetrics(context.Background(), f.trainerID, primitive.NewObjectID())
	assert.ErrorIs(t, err, service.ErrAssessmentNotFound)
}

func TestRecordAssessmentOwnership(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)

	_, err := f.svc.RecordAssessment(context.Background(), primitive.NewObjectID(), f.clientID, service.NewAssessmentInput{})
	assert.ErrorIs(t, err, service.ErrClientAccessDenied)

	_, err = f.svc.RecordAssessment(context.Background(), f.trainerID, primitive.NewObjectID(), service.NewAssessmentInput{})
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestGetHistoryOrderedByDate(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)

	f.record(t, service.NewAssessmentInput{Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), WeightKg: 78})
	f.record(t, service.NewAssessmentInput{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), WeightKg: 82})

	history, err := f.svc.GetHistory(context.Background(), f.trainerID, f.clientID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 82.0, history[0].WeightKg)
	assert.Equal(t, 78.0, history[1].WeightKg)
}

func TestCompareSessions(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)

	fromDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	f.record(t, service.NewAssessmentInput{
		Date:     fromDate,
		WeightKg: 82.5,
		HeightCm: 178,
		Circumferences: domain.Circumferences{
			domain.SiteWaist: 80,
			domain.SiteHip:   101,
		},
	})
	f.record(t, service.NewAssessmentInput{
		Date:     toDate,
		WeightKg: 80,
		HeightCm: 178,
		Circumferences: domain.Circumferences{
			domain.SiteWaist: 78,
			domain.SiteHip:   100.5,
		},
	})

	cmp, err := f.svc.Compare(context.Background(), f.trainerID, f.clientID, fromDate, toDate)
	require.NoError(t, err)

	assert.Equal(t, -2.5, cmp.WeightDeltaKg)
	assert.Equal(t, anthropometry.BMI(82.5, 178), cmp.BMIFrom)
	assert.Equal(t, anthropometry.BMI(80, 178), cmp.BMITo)

	waist, ok := cmp.Variations[domain.SiteWaist]
	require.True(t, ok)
	assert.Equal(t, -2.0, waist.DiffCm)
	assert.Equal(t, perimetry.StatusDecrease, waist.Status)

	assert.Len(t, cmp.Radar.Categories, 10)
}

func TestCompareDefaultsToFirstAndLatest(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)

	f.record(t, service.NewAssessmentInput{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), WeightKg: 85})
	f.record(t, service.NewAssessmentInput{Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), WeightKg: 83})
	f.record(t, service.NewAssessmentInput{Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), WeightKg: 81})

	cmp, err := f.svc.Compare(context.Background(), f.trainerID, f.clientID, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 85.0, cmp.WeightFromKg)
	assert.Equal(t, 81.0, cmp.WeightToKg)
	assert.Equal(t, -4.0, cmp.WeightDeltaKg)
}

func TestCompareSingleSession(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)
	f.record(t, service.NewAssessmentInput{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), WeightKg: 85})

	// First and latest resolve to the same session; nothing to compare.
	_, err := f.svc.Compare(context.Background(), f.trainerID, f.clientID, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, service.ErrComparisonNeedsTwoDates)
}

func TestCompareMissingSession(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)

	fromDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	f.record(t, service.NewAssessmentInput{Date: fromDate, WeightKg: 82})

	_, err := f.svc.Compare(context.Background(), f.trainerID, f.clientID, fromDate, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, service.ErrComparisonNeedsTwoDates)
}

func TestSymmetryReportViaService(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)

	a := f.record(t, service.NewAssessmentInput{
		WeightKg: 80,
		HeightCm: 178,
		Circumferences: domain.Circumferences{
			domain.SiteRightArmContracted: 36,
			domain.SiteLeftArmContracted:  35,
		},
	})

	report, err := f.svc.SymmetryReport(context.Background(), f.trainerID, a.ID)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "Arm (Contracted)", report[0].Limb)
	assert.Equal(t, perimetry.SideRight, report[0].DominantSide)
}

func TestPhotoUploadFlow(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)
	a := f.record(t, service.NewAssessmentInput{WeightKg: 80, HeightCm: 178})

	_, err := f.svc.RequestPhotoUploadURL(context.Background(), f.trainerID, a.ID, "application/pdf")
	assert.ErrorIs(t, err, service.ErrInvalidContentType)

	resp, err := f.svc.RequestPhotoUploadURL(context.Background(), f.trainerID, a.ID, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ObjectKey, "photos/"+f.clientID.Hex()+"/"+a.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(resp.ObjectKey, ".jpeg"))
	assert.Contains(t, resp.UploadURL, resp.ObjectKey)

	photo, err := f.svc.ConfirmPhotoUpload(context.Background(), f.trainerID, a.ID, resp.ObjectKey, "front.jpg", 120_000, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, resp.ObjectKey, photo.S3ObjectKey)

	updated, err := f.svc.GetAssessment(context.Background(), f.trainerID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.PhotoID)
	assert.Equal(t, photo.ID, *updated.PhotoID)

	// Only one photo per assessment.
	_, err = f.svc.RequestPhotoUploadURL(context.Background(), f.trainerID, a.ID, "image/png")
	assert.ErrorIs(t, err, service.ErrPhotoAlreadyLinked)

	url, err := f.svc.GetPhotoDownloadURL(context.Background(), f.trainerID, a.ID)
	require.NoError(t, err)
	assert.Contains(t, url, resp.ObjectKey)
}

func TestDeleteAssessmentRemovesPhotoObject(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)
	a := f.record(t, service.NewAssessmentInput{WeightKg: 80, HeightCm: 178})

	resp, err := f.svc.RequestPhotoUploadURL(context.Background(), f.trainerID, a.ID, "image/jpeg")
	require.NoError(t, err)
	_, err = f.svc.ConfirmPhotoUpload(context.Background(), f.trainerID, a.ID, resp.ObjectKey, "front.jpg", 1024, "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteAssessment(context.Background(), f.trainerID, a.ID))

	_, err = f.svc.GetAssessment(context.Background(), f.trainerID, a.ID)
	assert.ErrorIs(t, err, service.ErrAssessmentNotFound)
	assert.Equal(t, []string{resp.ObjectKey}, f.storage.deletedKeys)
}

func TestDownloadURLWithoutPhoto(t *testing.T) {
	f := newAssessmentFixture(t, domain.GenderMale)
	a := f.record(t, service.NewAssessmentInput{WeightKg: 80, HeightCm: 178})

	_, err := f.svc.GetPhotoDownloadURL(context.Background(), f.trainerID, a.ID)
	assert.ErrorIs(t, err, service.ErrPhotoNotFound)
}
