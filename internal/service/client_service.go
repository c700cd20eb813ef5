package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientAccessDenied = errors.New("access denied to this client")
	ErrClientValidation   = errors.New("client validation failed")
)

// --- Service Interface ---
type ClientService interface {
	CreateClient(ctx context.Context, trainerID primitive.ObjectID, name, email, gender string, birthDate time.Time, notes string) (*domain.Client, error)
	GetClient(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.Client, error)
	GetClients(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Client, error)
	UpdateClient(ctx context.Context, trainerID, clientID primitive.ObjectID, name, email, gender string, birthDate time.Time, notes string) (*domain.Client, error)
	DeleteClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error
}

// --- Service Implementation ---

// clientService implements the ClientService interface.
type clientService struct {
	clientRepo     repository.ClientRepository
	assessmentRepo repository.AssessmentRepository
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository, assessmentRepo repository.AssessmentRepository) ClientService {
	return &clientService{
		clientRepo:     clientRepo,
		assessmentRepo: assessmentRepo,
	}
}

// CreateClient registers a new tracked individual for a trainer. The
// gender token is validated here so stored profiles always carry one of
// the two recognized values.
func (s *clientService) CreateClient(ctx context.Context, trainerID primitive.ObjectID, name, email, gender string, birthDate time.Time, notes string) (*domain.Client, error) {
	if name == "" {
		return nil, ErrClientValidation
	}
	if trainerID == primitive.NilObjectID {
		return nil, errors.New("trainer ID is required to create a client")
	}

	parsedGender, err := domain.ParseGender(gender)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientValidation, err)
	}

	client := &domain.Client{
		TrainerID: trainerID,
		Name:      name,
		Email:     email,
		Gender:    parsedGender,
		BirthDate: birthDate,
		Notes:     notes,
	}

	clientID, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	client.ID = clientID

	return s.clientRepo.GetByID(ctx, clientID) // Fetch again to get all fields
}

// GetClient retrieves a single client, enforcing trainer ownership.
func (s *clientService) GetClient(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.Client, error) {
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

// GetClients retrieves all clients owned by a trainer.
func (s *clientService) GetClients(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Client, error) {
	if trainerID == primitive.NilObjectID {
		return nil, errors.New("trainer ID cannot be nil")
	}
	return s.clientRepo.GetByTrainerID(ctx, trainerID)
}

// UpdateClient handles updating an existing client, ensuring ownership.
func (s *clientService) UpdateClient(ctx context.Context, trainerID, clientID primitive.ObjectID, name, email, gender string, birthDate time.Time, notes string) (*domain.Client, error) {
	if name == "" {
		return nil, ErrClientValidation
	}

	parsedGender, err := domain.ParseGender(gender)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientValidation, err)
	}

	existing, err := s.GetClient(ctx, trainerID, clientID)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Email = email
	existing.Gender = parsedGender
	existing.BirthDate = birthDate
	existing.Notes = notes

	if err := s.clientRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteClient removes a client and their whole measurement history.
func (s *clientService) DeleteClient(ctx context.Context, trainerID, clientID primitive.ObjectID) error {
	if trainerID == primitive.NilObjectID || clientID == primitive.NilObjectID {
		return errors.New("trainer ID and client ID are required")
	}

	// The repository's Delete filter includes the trainerID, so ownership
	// is enforced at the DB level.
	err := s.clientRepo.Delete(ctx, clientID, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	return s.assessmentRepo.DeleteByClientID(ctx, clientID)
}
