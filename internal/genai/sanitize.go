package genai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go_5_flashcard_keep/internal/model"
)

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?[ \t]*\n?")
	fenceClose = regexp.MustCompile("\n?[ \t]*```$")
	// First bracketed substring in the raw text. Greedy so nested arrays and
	// stray ']' characters inside card text stay intact.
	bracketed = regexp.MustCompile(`(?s)\[.*\]`)
)

// rawCard tolerates both field namings the model is known to produce.
type rawCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Front    string `json:"front"`
	Back     string `json:"back"`
}

// Sanitize normalizes raw model output into cards. It strips an optional
// markdown fence, parses the remainder as JSON (falling back to the first
// [...] substring when the response has prose around the payload) and
// validates that every element carries a question and an answer. Idempotent
// on already-clean input.
func Sanitize(raw string) ([]model.Card, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = fenceOpen.ReplaceAllString(cleaned, "")
	cleaned = fenceClose.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	payload := cleaned
	var probe interface{}
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		payload = bracketed.FindString(cleaned)
		if payload == "" {
			return nil, fmt.Errorf("%w: no JSON array in model output", model.ErrBadFormat)
		}
		if err := json.Unmarshal([]byte(payload), &probe); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrBadFormat, err)
		}
	}

	if _, ok := probe.([]interface{}); !ok {
		return nil, fmt.Errorf("%w: top-level value is not an array", model.ErrBadSchema)
	}

	var rawCards []rawCard
	if err := json.Unmarshal([]byte(payload), &rawCards); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrBadSchema, err)
	}
	if len(rawCards) == 0 {
		return nil, fmt.Errorf("%w: model returned no cards", model.ErrBadSchema)
	}

	cards := make([]model.Card, 0, len(rawCards))
	for i, rc := range rawCards {
		question := rc.Question
		if question == "" {
			question = rc.Front
		}
		answer := rc.Answer
		if answer == "" {
			answer = rc.Back
		}
		if question == "" || answer == "" {
			return nil, fmt.Errorf("%w: card %d is missing question or answer", model.ErrBadSchema, i)
		}
		cards = append(cards, model.Card{Question: question, Answer: answer})
	}
	return cards, nil
}
