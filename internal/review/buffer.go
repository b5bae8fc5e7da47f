// Package review holds generated cards between generation and save. A buffer
// is owned by one generate session, lives only in memory and never performs
// I/O; discarding it loses the cards, which is the intended lifecycle.
package review

import (
	"sync"

	"go_5_flashcard_keep/internal/model"
)

// Buffer is an ordered, editable staging list of cards.
type Buffer struct {
	mu    sync.Mutex
	cards []model.Card
}

func NewBuffer(cards []model.Card) *Buffer {
	copied := make([]model.Card, len(cards))
	copy(copied, cards)
	return &Buffer{cards: copied}
}

// Delete removes the card at index, preserving the order of the rest.
// An out-of-range index returns model.ErrNotFound.
func (b *Buffer) Delete(index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.cards) {
		return model.ErrNotFound
	}
	b.cards = append(b.cards[:index], b.cards[index+1:]...)
	return nil
}

// EditAnswer replaces only the answer of the card at index. An empty answer
// is allowed; editing is deliberately permissive.
func (b *Buffer) EditAnswer(index int, answer string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.cards) {
		return model.ErrNotFound
	}
	b.cards[index].Answer = answer
	return nil
}

// Cards returns a copy of the current state.
func (b *Buffer) Cards() []model.Card {
	b.mu.Lock()
	defer b.mu.Unlock()

	copied := make([]model.Card, len(b.cards))
	copy(copied, b.cards)
	return copied
}

// Len reports the number of cards currently staged.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cards)
}
