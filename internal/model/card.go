package model

import (
	"time"

	"github.com/google/uuid"
)

// Card is one question/answer pair. The same shape is used on the wire
// (only question/answer are serialized), inside a review buffer and as the
// persisted row, so a card moves through the pipeline without remapping.
type Card struct {
	CardID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Position     int       `gorm:"not null" json:"-"`
	Question     string    `gorm:"not null" json:"question" validate:"required"`
	Answer       string    `gorm:"not null" json:"answer" validate:"required"`
	CreatedAt    time.Time `json:"-"`
}

func (Card) TableName() string {
	return "cards"
}
