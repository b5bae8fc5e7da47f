//go:generate mockery --name CollectionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"

	"gorm.io/gorm"
)

// CollectionRepository accesses the per-user collection summaries. All
// methods take the *gorm.DB to run on so the service can pass a transaction.
type CollectionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, collection *model.Collection) error
	FindByUser(ctx context.Context, db *gorm.DB, userID string) ([]*model.Collection, error)
	FindByName(ctx context.Context, db *gorm.DB, userID, name string) (*model.Collection, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, name string) error
}

type gormCollectionRepository struct{}

func NewGormCollectionRepository() CollectionRepository {
	return &gormCollectionRepository{}
}

func (r *gormCollectionRepository) Create(ctx context.Context, tx *gorm.DB, collection *model.Collection) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(collection)
	if result.Error != nil {
		// The (user_id, name) unique index turns a racing duplicate save into
		// a duplicated-key error here rather than corrupting the namespace.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating collection in DB",
			"error", result.Error,
			"user_id", collection.UserID,
			"name", collection.Name,
		)
		return fmt.Errorf("gormCollectionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCollectionRepository) FindByUser(ctx context.Context, db *gorm.DB, userID string) ([]*model.Collection, error) {
	logger := middleware.GetLogger(ctx)
	var collections []*model.Collection
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&collections)
	if result.Error != nil {
		logger.Error("Error finding collections by user in DB",
			"error", result.Error,
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormCollectionRepository.FindByUser: %w", result.Error)
	}
	return collections, nil
}

func (r *gormCollectionRepository) FindByName(ctx context.Context, db *gorm.DB, userID, name string) (*model.Collection, error) {
	logger := middleware.GetLogger(ctx)
	var collection model.Collection
	result := db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&collection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding collection by name in DB",
			"error", result.Error,
			"user_id", userID,
			"name", name,
		)
		return nil, fmt.Errorf("gormCollectionRepository.FindByName: %w", result.Error)
	}
	return &collection, nil
}

func (r *gormCollectionRepository) Delete(ctx context.Context, tx *gorm.DB, userID, name string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).Delete(&model.Collection{})
	if result.Error != nil {
		logger.Error("Error deleting collection in DB",
			"error", result.Error,
			"user_id", userID,
			"name", name,
		)
		return fmt.Errorf("gormCollectionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
