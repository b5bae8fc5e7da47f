package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/webutil"
)

// CardGenerator is what the handlers need from the generation pipeline.
// *genai.Generator satisfies it.
type CardGenerator interface {
	Generate(ctx context.Context, sourceText string) ([]model.Card, error)
}

// GenerateHandler serves the public generation contract. Its response bodies
// are fixed by the external interface: a bare card array on success, and
// literal {"error": "..."} strings on failure, so it bypasses the shared
// error envelope on purpose.
type GenerateHandler struct {
	generator CardGenerator
	logger    *slog.Logger
}

func NewGenerateHandler(generator CardGenerator, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateHandler{
		generator: generator,
		logger:    logger,
	}
}

// Generate handles POST /api/v1/generate.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Generate"))

	var req model.GenerateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		logger.Warn("Generate called without text")
		writeContractError(w, http.StatusBadRequest, "Text field is required.")
		return
	}

	cards, err := h.generator.Generate(r.Context(), req.Text)
	if err != nil {
		logger.Error("Error generating flashcards", slog.Any("error", err))
		writeContractError(w, http.StatusInternalServerError, "Failed to generate flashcards")
		return
	}

	logger.Info("Flashcards generated", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

func writeContractError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
