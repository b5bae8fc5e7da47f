package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/review"
	"go_5_flashcard_keep/internal/service"
	"go_5_flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DraftHandler runs the staged review flow: generate into a buffer, edit or
// delete cards in place, then either save the buffer as a collection or
// discard it.
type DraftHandler struct {
	generator   CardGenerator
	drafts      *review.Store
	collections service.CollectionService
	logger      *slog.Logger
}

func NewDraftHandler(generator CardGenerator, drafts *review.Store, collections service.CollectionService, logger *slog.Logger) *DraftHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DraftHandler{
		generator:   generator,
		drafts:      drafts,
		collections: collections,
		logger:      logger,
	}
}

// CreateDraft handles POST /api/v1/drafts.
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateDraft"))

	userID, err := middleware.GetUserID(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.GenerateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err)
		return
	}

	cards, err := h.generator.Generate(r.Context(), req.Text)
	if err != nil {
		logger.Error("Error generating flashcards for draft", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	draftID, buffer := h.drafts.Create(userID, cards)
	logger.Info("Draft created", slog.String("draft_id", draftID.String()), slog.Int("count", buffer.Len()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.DraftResponse{DraftID: draftID, Cards: buffer.Cards()}, logger)
}

// GetDraft handles GET /api/v1/drafts/{draft_id}.
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDraft"))

	_, draftID, buffer, ok := h.resolveDraft(w, r, logger)
	if !ok {
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.DraftResponse{DraftID: draftID, Cards: buffer.Cards()}, logger)
}

// EditCard handles PATCH /api/v1/drafts/{draft_id}/cards/{index}.
func (h *DraftHandler) EditCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "EditCard"))

	_, draftID, buffer, ok := h.resolveDraft(w, r, logger)
	if !ok {
		return
	}

	index, err := parseCardIndex(r)
	if err != nil {
		logger.Warn("Invalid card index in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.EditCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if req.Answer == nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "Field 'answer' is required.", "answer", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := buffer.EditAnswer(index, *req.Answer); err != nil {
		logger.Warn("Card index out of range", slog.Int("index", index))
		appErr := model.NewAppError("NOT_FOUND", "No card at this index.", "index", model.ErrNotFound)
		webutil.HandleError(w, logger, appErr)
		return
	}

	logger.Info("Draft card edited", slog.String("draft_id", draftID.String()), slog.Int("index", index))
	webutil.RespondWithJSON(w, http.StatusOK, model.DraftResponse{DraftID: draftID, Cards: buffer.Cards()}, logger)
}

// DeleteCard handles DELETE /api/v1/drafts/{draft_id}/cards/{index}.
func (h *DraftHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))

	_, draftID, buffer, ok := h.resolveDraft(w, r, logger)
	if !ok {
		return
	}

	index, err := parseCardIndex(r)
	if err != nil {
		logger.Warn("Invalid card index in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if err := buffer.Delete(index); err != nil {
		logger.Warn("Card index out of range", slog.Int("index", index))
		appErr := model.NewAppError("NOT_FOUND", "No card at this index.", "index", model.ErrNotFound)
		webutil.HandleError(w, logger, appErr)
		return
	}

	logger.Info("Draft card deleted", slog.String("draft_id", draftID.String()), slog.Int("index", index))
	webutil.RespondWithJSON(w, http.StatusOK, model.DraftResponse{DraftID: draftID, Cards: buffer.Cards()}, logger)
}

// SaveDraft handles POST /api/v1/drafts/{draft_id}/save. On success the draft
// is discarded; on a duplicate name it is kept so the user can pick another.
func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveDraft"))

	userID, draftID, buffer, ok := h.resolveDraft(w, r, logger)
	if !ok {
		return
	}

	var req model.SaveDraftRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err)
		return
	}

	cards := buffer.Cards()
	if len(cards) == 0 {
		appErr := model.NewAppError("VALIDATION_ERROR", "Draft has no cards left to save.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	collection, err := h.collections.SaveCollection(r.Context(), userID, req.Name, cards)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Collection name already exists", slog.String("name", req.Name))
			appErr := model.NewAppError("DUPLICATE_NAME", "A collection with this name already exists.", "name", model.ErrConflict)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Error saving draft as collection", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.drafts.Discard(draftID, userID); err != nil {
		// Save already committed; a missing draft here only means a racing
		// discard won.
		logger.Warn("Draft already gone after save", slog.String("draft_id", draftID.String()))
	}

	logger.Info("Draft saved as collection",
		slog.String("draft_id", draftID.String()),
		slog.String("collection_id", collection.CollectionID.String()),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, model.CollectionSummary{
		CollectionID: collection.CollectionID,
		Name:         collection.Name,
	}, logger)
}

// DiscardDraft handles DELETE /api/v1/drafts/{draft_id}.
func (h *DraftHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DiscardDraft"))

	userID, err := middleware.GetUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	draftID, err := parseDraftID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.drafts.Discard(draftID, userID); err != nil {
		logger.Warn("Failed to discard draft", slog.String("draft_id", draftID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Draft discarded", slog.String("draft_id", draftID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// resolveDraft pulls the caller's id and the addressed buffer out of the
// request, writing the error response itself when anything is off.
func (h *DraftHandler) resolveDraft(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, uuid.UUID, *review.Buffer, bool) {
	userID, err := middleware.GetUserID(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return "", uuid.Nil, nil, false
	}

	draftID, err := parseDraftID(r)
	if err != nil {
		logger.Warn("Invalid draft id in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return "", uuid.Nil, nil, false
	}

	buffer, err := h.drafts.Get(draftID, userID)
	if err != nil {
		logger.Warn("Draft lookup failed", slog.String("draft_id", draftID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return "", uuid.Nil, nil, false
	}
	return userID, draftID, buffer, true
}

func parseDraftID(r *http.Request) (uuid.UUID, error) {
	draftIDStr := chi.URLParam(r, "draft_id")
	draftID, err := uuid.Parse(draftIDStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "draft_id is not a valid uuid.", "draft_id", model.ErrInvalidInput)
	}
	return draftID, nil
}

func parseCardIndex(r *http.Request) (int, error) {
	indexStr := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return 0, model.NewAppError("INVALID_URL_PARAM", "index is not a number.", "index", model.ErrInvalidInput)
	}
	return index, nil
}

func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
		webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		return
	}
	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
}
