package service

import (
	"context"

	"github.com/passmint/passmint-go/internal/generator"
	"github.com/passmint/passmint-go/internal/model"
)

// HistoryStore is the slice of history persistence the service depends on.
// *repository.HistoryRepository implements it.
type HistoryStore interface {
	Insert(ctx context.Context, entry *model.HistoryEntry) error
	ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error)
	Exists(ctx context.Context, userID int64, password string) (bool, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

// HistoryService handles password history business logic.
type HistoryService struct {
	store HistoryStore
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the user's password history, newest first.
func (s *HistoryService) List(ctx context.Context, userID int64) ([]model.HistoryEntryResponse, error) {
	entries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return entriesToResponse(entries), nil
}

// Record stores a caller-chosen password in the user's history. The strength
// label is derived server-side so stored labels always agree with the scorer.
func (s *HistoryService) Record(ctx context.Context, userID int64, req model.SaveHistoryRequest) (model.HistoryEntryResponse, error) {
	if req.Password == "" {
		return model.HistoryEntryResponse{}, ErrPasswordRequired
	}

	entry := model.HistoryEntry{
		UserID:        userID,
		Password:      req.Password,
		StrengthLabel: string(generator.Score(req.Password).Label),
	}

	if err := s.store.Insert(ctx, &entry); err != nil {
		return model.HistoryEntryResponse{}, err
	}

	return entryToResponse(entry), nil
}

// GenerateUnique produces a password that does not collide with anything in
// the user's stored history, records it, and returns it with its rating.
// Each candidate is checked against the live store; a failed lookup aborts
// the attempt loop instead of counting as a collision.
func (s *HistoryService) GenerateUnique(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg, err := configFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	var checkErr error
	isUnique := func(candidate string) bool {
		if checkErr != nil {
			return false
		}
		exists, err := s.store.Exists(ctx, userID, candidate)
		if err != nil {
			checkErr = err
			return false
		}
		return !exists
	}

	password, err := generator.GenerateUnique(cfg, isUnique)
	if checkErr != nil {
		return model.GenerateResponse{}, checkErr
	}
	if err != nil {
		return model.GenerateResponse{}, err
	}

	rating := generator.Score(password)

	entry := model.HistoryEntry{
		UserID:        userID,
		Password:      password,
		StrengthLabel: string(rating.Label),
	}
	if err := s.store.Insert(ctx, &entry); err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: ratingToResponse(rating),
	}, nil
}

// Clear removes the user's entire password history. Clearing an empty history
// succeeds.
func (s *HistoryService) Clear(ctx context.Context, userID int64) error {
	return s.store.DeleteByUser(ctx, userID)
}

// entryToResponse converts a HistoryEntry to its API shape.
func entryToResponse(e model.HistoryEntry) model.HistoryEntryResponse {
	return model.HistoryEntryResponse{
		Password:      e.Password,
		StrengthLabel: e.StrengthLabel,
		CreatedAt:     e.CreatedAt,
	}
}

// entriesToResponse converts a slice of HistoryEntry to a slice of
// HistoryEntryResponse.
func entriesToResponse(entries []model.HistoryEntry) []model.HistoryEntryResponse {
	result := make([]model.HistoryEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = entryToResponse(e)
	}
	return result
}
