package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.RepositoryError("duplicate email")
		}
	}
	id := primitive.NewObjectID()
	copied := *user
	copied.ID = id
	r.users[id] = &copied
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

type fakeClientRepo struct {
	clients map[primitive.ObjectID]*domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[primitive.ObjectID]*domain.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *client
	copied.ID = id
	r.clients[id] = &copied
	return id, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeClientRepo) GetByTrainerID(_ context.Context, trainerID primitive.ObjectID) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range r.clients {
		if c.TrainerID == trainerID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	existing, ok := r.clients[client.ID]
	if !ok || existing.TrainerID != client.TrainerID {
		return repository.ErrUpdateFailed
	}
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id primitive.ObjectID, trainerID primitive.ObjectID) error {
	existing, ok := r.clients[id]
	if !ok || existing.TrainerID != trainerID {
		return repository.ErrDeleteFailed
	}
	delete(r.clients, id)
	return nil
}

type fakeAssessmentRepo struct {
	assessments map[primitive.ObjectID]*domain.Assessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{assessments: make(map[primitive.ObjectID]*domain.Assessment)}
}

func (r *fakeAssessmentRepo) Create(_ context.Context, assessment *domain.Assessment) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *assessment
	copied.ID = id
	if copied.Date.IsZero() {
		copied.Date = time.Now().UTC()
	}
	r.assessments[id] = &copied
	return id, nil
}

func (r *fakeAssessmentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAssessmentRepo) GetByClientID(_ context.Context, clientID primitive.ObjectID) ([]domain.Assessment, error) {
	var out []domain.Assessment
	for _, a := range r.assessments {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeAssessmentRepo) GetByClientAndDate(_ context.Context, clientID primitive.ObjectID, date time.Time) (*domain.Assessment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, a := range r.assessments {
		if a.ClientID == clientID && !a.Date.Before(dayStart) && a.Date.Before(dayEnd) {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAssessmentRepo) GetFirstByClientID(ctx context.Context, clientID primitive.ObjectID) (*domain.Assessment, error) {
	all, _ := r.GetByClientID(ctx, clientID)
	if len(all) == 0 {
		return nil, repository.ErrNotFound
	}
	first := all[0]
	return &first, nil
}

func (r *fakeAssessmentRepo) GetLatestByClientID(ctx context.Context, clientID primitive.ObjectID) (*domain.Assessment, error) {
	all, _ := r.GetByClientID(ctx, clientID)
	if len(all) == 0 {
		return nil, repository.ErrNotFound
	}
	latest := all[len(all)-1]
	return &latest, nil
}

func (r *fakeAssessmentRepo) Update(_ context.Context, assessment *domain.Assessment) error {
	if _, ok := r.assessments[assessment.ID]; !ok {
		return repository.ErrUpdateFailed
	}
	copied := *assessment
	r.assessments[assessment.ID] = &copied
	return nil
}

func (r *fakeAssessmentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.assessments[id]; !ok {
		return repository.ErrDeleteFailed
	}
	delete(r.assessments, id)
	return nil
}

func (r *fakeAssessmentRepo) DeleteByClientID(_ context.Context, clientID primitive.ObjectID) error {
	for id, a := range r.assessments {
		if a.ClientID == clientID {
			delete(r.assessments, id)
		}
	}
	return nil
}

type fakePhotoRepo struct {
	photos map[primitive.ObjectID]*domain.ProgressPhoto
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: make(map[primitive.ObjectID]*domain.ProgressPhoto)}
}

func (r *fakePhotoRepo) Create(_ context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *photo
	copied.ID = id
	r.photos[id] = &copied
	return id, nil
}

func (r *fakePhotoRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ProgressPhoto, error) {
	p, ok := r.photos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePhotoRepo) GetByAssessmentID(_ context.Context, assessmentID primitive.ObjectID) (*domain.ProgressPhoto, error) {
	for _, p := range r.photos {
		if p.AssessmentID == assessmentID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePhotoRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.photos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.photos, id)
	return nil
}

// fakeStorage records the keys it was asked about and returns canned URLs.
type fakeStorage struct {
	uploadedKeys []string
	deletedKeys  []string
}

func (s *fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey string, _ string, _ time.Duration) (string, error) {
	s.uploadedKeys = append(s.uploadedKeys, objectKey)
	return "https://storage.test/upload/" + objectKey, nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.deletedKeys = append(s.deletedKeys, objectKey)
	return nil
}
