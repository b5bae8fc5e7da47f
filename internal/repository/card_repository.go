//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardRepository accesses the card rows belonging to a collection.
type CardRepository interface {
	BulkCreate(ctx context.Context, tx *gorm.DB, cards []*model.Card) error
	FindByCollection(ctx context.Context, db *gorm.DB, collectionID uuid.UUID) ([]*model.Card, error)
	DeleteByCollection(ctx context.Context, tx *gorm.DB, collectionID uuid.UUID) error
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) BulkCreate(ctx context.Context, tx *gorm.DB, cards []*model.Card) error {
	logger := middleware.GetLogger(ctx)
	if len(cards) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(cards)
	if result.Error != nil {
		logger.Error("Error bulk creating cards in DB",
			"error", result.Error,
			"collection_id", cards[0].CollectionID.String(),
			"count", len(cards),
		)
		return fmt.Errorf("gormCardRepository.BulkCreate: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByCollection(ctx context.Context, db *gorm.DB, collectionID uuid.UUID) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := db.WithContext(ctx).Where("collection_id = ?", collectionID).Order("position ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards by collection in DB",
			"error", result.Error,
			"collection_id", collectionID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByCollection: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) DeleteByCollection(ctx context.Context, tx *gorm.DB, collectionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("collection_id = ?", collectionID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting cards by collection in DB",
			"error", result.Error,
			"collection_id", collectionID.String(),
		)
		return fmt.Errorf("gormCardRepository.DeleteByCollection: %w", result.Error)
	}
	return nil
}
