package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/model"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCompletionClient struct {
	mock.Mock
}

func (m *mockCompletionClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.OpenAI.Model = "gpt-4o-mini"
	cfg.Generation.CardCount = 12
	cfg.Generation.MaxTokens = 2048
	cfg.Generation.Temperature = 0.3
	return cfg
}

func completionWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestGenerator_Generate_EmptyText(t *testing.T) {
	client := new(mockCompletionClient)
	g := NewGenerator(client, testConfig())

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := g.Generate(context.Background(), text)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	}

	// Validation must reject before any network call is made.
	client.AssertNotCalled(t, "CreateChatCompletion")
}

func TestGenerator_Generate_Success(t *testing.T) {
	client := new(mockCompletionClient)
	g := NewGenerator(client, testConfig())

	client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		// One system message carrying the card count, one user message
		// carrying the source text verbatim.
		return len(req.Messages) == 2 &&
			req.Messages[0].Role == openai.ChatMessageRoleSystem &&
			strings.Contains(req.Messages[0].Content, "12 flashcards") &&
			req.Messages[1].Role == openai.ChatMessageRoleUser &&
			req.Messages[1].Content == "photosynthesis notes"
	})).Return(completionWith("```json\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```"), nil).Once()

	cards, err := g.Generate(context.Background(), "photosynthesis notes")
	require.NoError(t, err)
	assert.Equal(t, []model.Card{{Question: "Q", Answer: "A"}}, cards)

	client.AssertExpectations(t)
}

func TestGenerator_Generate_UpstreamError(t *testing.T) {
	client := new(mockCompletionClient)
	g := NewGenerator(client, testConfig())

	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("connection refused")).Once()

	_, err := g.Generate(context.Background(), "some text")
	assert.ErrorIs(t, err, model.ErrUpstream)

	client.AssertExpectations(t)
}

func TestGenerator_Generate_NoChoices(t *testing.T) {
	client := new(mockCompletionClient)
	g := NewGenerator(client, testConfig())

	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, nil).Once()

	_, err := g.Generate(context.Background(), "some text")
	assert.ErrorIs(t, err, model.ErrUpstream)
}

func TestGenerator_Generate_MalformedContent(t *testing.T) {
	client := new(mockCompletionClient)
	g := NewGenerator(client, testConfig())

	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completionWith("I cannot generate flashcards for this."), nil).Once()

	_, err := g.Generate(context.Background(), "some text")
	assert.ErrorIs(t, err, model.ErrBadFormat)
}

func TestGenerator_Generate_SingleCallPerInvocation(t *testing.T) {
	client := new(mockCompletionClient)
	g := NewGenerator(client, testConfig())

	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("boom")).Once()

	_, err := g.Generate(context.Background(), "some text")
	require.Error(t, err)

	// No internal retry: exactly one upstream call.
	client.AssertNumberOfCalls(t, "CreateChatCompletion", 1)
}

func TestGenerator_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	client := new(mockCompletionClient)
	g := NewGenerator(client, testConfig())

	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, fmt.Errorf("upstream down"))

	for i := 0; i < 5; i++ {
		_, err := g.Generate(context.Background(), "text")
		require.ErrorIs(t, err, model.ErrUpstream)
	}

	// Breaker is open now; the next call must fail fast without reaching the
	// upstream client.
	_, err := g.Generate(context.Background(), "text")
	require.ErrorIs(t, err, model.ErrUpstream)
	client.AssertNumberOfCalls(t, "CreateChatCompletion", 5)
}
