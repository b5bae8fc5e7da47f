package service

import (
	"context"
	"errors"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectionService owns the persistence contract for a user's namespace:
// name uniqueness per user and all-or-nothing writes of summary plus cards.
type CollectionService interface {
	SaveCollection(ctx context.Context, userID, name string, cards []model.Card) (*model.Collection, error)
	ListCollections(ctx context.Context, userID string) ([]model.CollectionSummary, error)
	GetCollection(ctx context.Context, userID, name string) ([]model.Card, error)
	DeleteCollection(ctx context.Context, userID, name string) error
}

type collectionService struct {
	db             *gorm.DB
	collectionRepo repository.CollectionRepository
	cardRepo       repository.CardRepository
}

func NewCollectionService(db *gorm.DB, collectionRepo repository.CollectionRepository, cardRepo repository.CardRepository) CollectionService {
	return &collectionService{
		db:             db,
		collectionRepo: collectionRepo,
		cardRepo:       cardRepo,
	}
}

// SaveCollection writes the summary row and the card rows in one transaction.
// The duplicate-name check and the insert run inside the same transaction, and
// the (user_id, name) unique index backstops the check, so of two racing saves
// with the same name exactly one commits.
func (s *collectionService) SaveCollection(ctx context.Context, userID, name string, cards []model.Card) (*model.Collection, error) {
	logger := middleware.GetLogger(ctx)
	if userID == "" || name == "" || len(cards) == 0 {
		return nil, model.ErrInvalidInput
	}

	var created *model.Collection

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.collectionRepo.FindByName(ctx, tx, userID, name)
		if err == nil {
			return model.ErrConflict
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error checking collection name in transaction", "error", err)
			return model.ErrInternalServer
		}

		collection := &model.Collection{
			CollectionID: uuid.New(),
			UserID:       userID,
			Name:         name,
		}
		if err := s.collectionRepo.Create(ctx, tx, collection); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrConflict
			}
			logger.Error("Error creating collection in transaction", "error", err)
			return model.ErrInternalServer
		}

		rows := make([]*model.Card, 0, len(cards))
		for i, card := range cards {
			rows = append(rows, &model.Card{
				CardID:       uuid.New(),
				CollectionID: collection.CollectionID,
				Position:     i,
				Question:     card.Question,
				Answer:       card.Answer,
			})
		}
		if err := s.cardRepo.BulkCreate(ctx, tx, rows); err != nil {
			logger.Error("Error creating cards in transaction", "error", err)
			return model.ErrInternalServer
		}

		created = collection
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.ErrConflict
		}
		logger.Error("Transaction failed for SaveCollection", "error", err)
		return nil, model.ErrInternalServer
	}

	return created, nil
}

func (s *collectionService) ListCollections(ctx context.Context, userID string) ([]model.CollectionSummary, error) {
	logger := middleware.GetLogger(ctx)
	collections, err := s.collectionRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing collections", "error", err)
		return nil, model.ErrInternalServer
	}

	summaries := make([]model.CollectionSummary, 0, len(collections))
	for _, c := range collections {
		summaries = append(summaries, model.CollectionSummary{
			CollectionID: c.CollectionID,
			Name:         c.Name,
		})
	}
	return summaries, nil
}

// GetCollection returns the saved cards in order. An unknown name is not an
// error; it returns an empty slice, matching the read contract.
func (s *collectionService) GetCollection(ctx context.Context, userID, name string) ([]model.Card, error) {
	logger := middleware.GetLogger(ctx)

	collection, err := s.collectionRepo.FindByName(ctx, s.db, userID, name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []model.Card{}, nil
		}
		logger.Error("Error finding collection", "error", err)
		return nil, model.ErrInternalServer
	}

	rows, err := s.cardRepo.FindByCollection(ctx, s.db, collection.CollectionID)
	if err != nil {
		logger.Error("Error loading cards for collection", "error", err)
		return nil, model.ErrInternalServer
	}

	cards := make([]model.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, *row)
	}
	return cards, nil
}

// DeleteCollection removes the cards and the summary row in one transaction
// so a failure cannot orphan either side.
func (s *collectionService) DeleteCollection(ctx context.Context, userID, name string) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collection, err := s.collectionRepo.FindByName(ctx, tx, userID, name)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error finding collection for deletion", "error", err)
			return model.ErrInternalServer
		}

		if err := s.cardRepo.DeleteByCollection(ctx, tx, collection.CollectionID); err != nil {
			logger.Error("Error deleting cards in transaction", "error", err)
			return model.ErrInternalServer
		}
		if err := s.collectionRepo.Delete(ctx, tx, userID, name); err != nil {
			logger.Error("Error deleting collection in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		logger.Error("Transaction failed for DeleteCollection", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
