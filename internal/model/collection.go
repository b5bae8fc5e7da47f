package model

import (
	"time"

	"github.com/google/uuid"
)

// Collection is the summary row of one named card set. The cards themselves
// live in the cards table, keyed by CollectionID and ordered by Position.
// Name is unique per user; the composite index is what enforces it even when
// two saves race.
type Collection struct {
	CollectionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"not null;uniqueIndex:idx_collections_user_name" json:"-"`
	Name         string    `gorm:"not null;uniqueIndex:idx_collections_user_name" json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (Collection) TableName() string {
	return "collections"
}

// CollectionSummary is what listing a user's namespace returns.
type CollectionSummary struct {
	CollectionID uuid.UUID `json:"id"`
	Name         string    `json:"name"`
}

// GenerateRequest carries the source text for card generation.
type GenerateRequest struct {
	Text string `json:"text" validate:"required"`
}

// SaveCollectionRequest persists a reviewed card set under a name.
type SaveCollectionRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Cards []Card `json:"cards" validate:"required,min=1,dive"`
}

// SaveDraftRequest promotes a draft buffer into a named collection.
type SaveDraftRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// EditCardRequest replaces the answer of one card in a draft. A pointer so
// that an explicitly empty answer is distinguishable from a missing field;
// an empty answer is accepted.
type EditCardRequest struct {
	Answer *string `json:"answer" validate:"required"`
}

// DraftResponse is the staged state of one generate session.
type DraftResponse struct {
	DraftID uuid.UUID `json:"draft_id"`
	Cards   []Card    `json:"cards"`
}
