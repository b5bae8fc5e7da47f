package service

import (
	"context"
	"sync"
	"testing"

	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRealDB runs the service against real repositories on in-memory
// sqlite, exercising the persistence contract end to end: transactions,
// the unique index and ordered reads.
func setupRealDB(t *testing.T) (*gorm.DB, CollectionService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Collection{}, &model.Card{}))

	s := NewCollectionService(db, repository.NewGormCollectionRepository(), repository.NewGormCardRepository())
	return db, s
}

func TestCollectionStore_SaveAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, s := setupRealDB(t)

	cards := []model.Card{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}
	_, err := s.SaveCollection(ctx, "user-1", "Chapter 1", cards)
	require.NoError(t, err)

	got, err := s.GetCollection(ctx, "user-1", "Chapter 1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, card := range got {
		assert.Equal(t, cards[i].Question, card.Question)
		assert.Equal(t, cards[i].Answer, card.Answer)
	}
}

func TestCollectionStore_DuplicateNameKeepsOriginal(t *testing.T) {
	ctx := context.Background()
	_, s := setupRealDB(t)

	original := []model.Card{{Question: "Q", Answer: "original"}}
	_, err := s.SaveCollection(ctx, "user-1", "Chapter 1", original)
	require.NoError(t, err)

	_, err = s.SaveCollection(ctx, "user-1", "Chapter 1", []model.Card{{Question: "Q", Answer: "other"}})
	assert.ErrorIs(t, err, model.ErrConflict)

	// The original cards are untouched.
	got, err := s.GetCollection(ctx, "user-1", "Chapter 1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "original", got[0].Answer)
}

// Same name under different users is not a conflict; namespaces are
// per-user.
func TestCollectionStore_SameNameDifferentUsers(t *testing.T) {
	ctx := context.Background()
	_, s := setupRealDB(t)

	_, err := s.SaveCollection(ctx, "user-1", "Chapter 1", []model.Card{{Question: "Q", Answer: "u1"}})
	require.NoError(t, err)
	_, err = s.SaveCollection(ctx, "user-2", "Chapter 1", []model.Card{{Question: "Q", Answer: "u2"}})
	require.NoError(t, err)

	got1, err := s.GetCollection(ctx, "user-1", "Chapter 1")
	require.NoError(t, err)
	got2, err := s.GetCollection(ctx, "user-2", "Chapter 1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got1[0].Answer)
	assert.Equal(t, "u2", got2[0].Answer)
}

func TestCollectionStore_UserCannotSeeForeignCollections(t *testing.T) {
	ctx := context.Background()
	_, s := setupRealDB(t)

	_, err := s.SaveCollection(ctx, "user-1", "Secrets", []model.Card{{Question: "Q", Answer: "A"}})
	require.NoError(t, err)

	summaries, err := s.ListCollections(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, summaries)

	cards, err := s.GetCollection(ctx, "user-2", "Secrets")
	require.NoError(t, err)
	assert.Empty(t, cards)

	assert.ErrorIs(t, s.DeleteCollection(ctx, "user-2", "Secrets"), model.ErrNotFound)
}

func TestCollectionStore_DeleteRemovesSummaryAndCards(t *testing.T) {
	ctx := context.Background()
	db, s := setupRealDB(t)

	_, err := s.SaveCollection(ctx, "user-1", "Chapter 1", []model.Card{{Question: "Q", Answer: "A"}})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCollection(ctx, "user-1", "Chapter 1"))

	summaries, err := s.ListCollections(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, summaries)

	cards, err := s.GetCollection(ctx, "user-1", "Chapter 1")
	require.NoError(t, err)
	assert.Empty(t, cards)

	// No orphaned card rows behind the summary.
	var count int64
	require.NoError(t, db.Model(&model.Card{}).Count(&count).Error)
	assert.Zero(t, count)

	// The freed name can be reused.
	_, err = s.SaveCollection(ctx, "user-1", "Chapter 1", []model.Card{{Question: "Q2", Answer: "A2"}})
	require.NoError(t, err)
}

func TestCollectionStore_ListsInCreationOrder(t *testing.T) {
	ctx := context.Background()
	_, s := setupRealDB(t)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := s.SaveCollection(ctx, "user-1", name, []model.Card{{Question: "Q", Answer: "A"}})
		require.NoError(t, err)
	}

	summaries, err := s.ListCollections(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "First", summaries[0].Name)
	assert.Equal(t, "Second", summaries[1].Name)
	assert.Equal(t, "Third", summaries[2].Name)
}

// Two saves racing on the same name: exactly one commits, and the namespace
// ends with exactly one summary and one matching card set.
func TestCollectionStore_ConcurrentSavesSameName(t *testing.T) {
	ctx := context.Background()
	db, s := setupRealDB(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.SaveCollection(ctx, "user-1", "X", []model.Card{{Question: "Q", Answer: "A"}})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, 1, successes, "exactly one of the racing saves must succeed")

	var collections int64
	require.NoError(t, db.Model(&model.Collection{}).Where("user_id = ? AND name = ?", "user-1", "X").Count(&collections).Error)
	assert.EqualValues(t, 1, collections)

	var cards int64
	require.NoError(t, db.Model(&model.Card{}).Count(&cards).Error)
	assert.EqualValues(t, 1, cards, "no orphaned card sets")
}
