package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// CompletionClient is the slice of the OpenAI client the generator needs.
// *openai.Client satisfies it; tests substitute their own.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// systemPromptTemplate is a prompt-engineering surface, not logic. The only
// part of it the rest of the system depends on is the requested card count,
// and even that is an upper bound the model is free to miss.
const systemPromptTemplate = `You are a flashcard creator. Generate concise and effective flashcards from the provided text. %d flashcards are required.
Format output as JSON: [{ "question": "...", "answer": "..." }]`

// Generator turns free text into cards with a single chat-completion call.
// It never persists anything; the sanitizer validates whatever comes back.
type Generator struct {
	client      CompletionClient
	breaker     *gobreaker.CircuitBreaker
	model       string
	cardCount   int
	maxTokens   int
	temperature float32
}

func NewGenerator(client CompletionClient, cfg *config.Config) *Generator {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openai-chat",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Generator{
		client:      client,
		breaker:     breaker,
		model:       cfg.OpenAI.Model,
		cardCount:   cfg.Generation.CardCount,
		maxTokens:   cfg.Generation.MaxTokens,
		temperature: cfg.Generation.Temperature,
	}
}

// Generate makes exactly one upstream call per invocation; there is no retry
// loop. Cancelling ctx aborts the request. Transport failures, non-success
// responses and an open breaker all surface as model.ErrUpstream.
func (g *Generator) Generate(ctx context.Context, sourceText string) ([]model.Card, error) {
	logger := middleware.GetLogger(ctx)

	if strings.TrimSpace(sourceText) == "" {
		return nil, model.ErrInvalidInput
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPromptTemplate, g.cardCount),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: sourceText,
			},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		logger.Warn("Chat completion request failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}

	resp := result.(openai.ChatCompletionResponse)
	if len(resp.Choices) == 0 {
		logger.Warn("Chat completion returned no choices")
		return nil, fmt.Errorf("%w: empty response", model.ErrUpstream)
	}

	cards, err := Sanitize(resp.Choices[0].Message.Content)
	if err != nil {
		logger.Warn("Generated content failed sanitization", slog.Any("error", err))
		return nil, err
	}

	logger.Info("Flashcards generated", slog.Int("count", len(cards)))
	return cards, nil
}
