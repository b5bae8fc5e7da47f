package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/service"
	"go_5_flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// CollectionHandler exposes the persisted side: list, direct save, read and
// delete of named collections, always scoped to the authenticated user.
type CollectionHandler struct {
	service service.CollectionService
	logger  *slog.Logger
}

func NewCollectionHandler(s service.CollectionService, logger *slog.Logger) *CollectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectionHandler{
		service: s,
		logger:  logger,
	}
}

// ListCollections handles GET /api/v1/collections.
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCollections"))

	userID, err := middleware.GetUserID(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	summaries, err := h.service.ListCollections(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing collections in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if summaries == nil {
		summaries = []model.CollectionSummary{}
	}
	logger.Info("Collections listed", slog.Int("count", len(summaries)))
	webutil.RespondWithJSON(w, http.StatusOK, summaries, logger)
}

// SaveCollection handles POST /api/v1/collections, the direct save path that
// skips the draft flow.
func (h *CollectionHandler) SaveCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveCollection"))

	userID, err := middleware.GetUserID(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SaveCollectionRequest
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

	collection, err := h.service.SaveCollection(r.Context(), userID, req.Name, req.Cards)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Collection name already exists", slog.String("name", req.Name))
			appErr := model.NewAppError("DUPLICATE_NAME", "A collection with this name already exists.", "name", model.ErrConflict)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Error saving collection in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Collection saved", slog.String("collection_id", collection.CollectionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.CollectionSummary{
		CollectionID: collection.CollectionID,
		Name:         collection.Name,
	}, logger)
}

// GetCollection handles GET /api/v1/collections/{name}. An unknown name
// yields an empty array, not a 404.
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCollection"))

	userID, err := middleware.GetUserID(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	name, err := collectionNameParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("name", name))

	cards, err := h.service.GetCollection(r.Context(), userID, name)
	if err != nil {
		logger.Error("Error getting collection in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []model.Card{}
	}
	logger.Info("Collection retrieved", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// DeleteCollection handles DELETE /api/v1/collections/{name}.
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCollection"))

	userID, err := middleware.GetUserID(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	name, err := collectionNameParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("name", name))

	if err := h.service.DeleteCollection(r.Context(), userID, name); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Collection not found for deletion")
		} else {
			logger.Error("Error deleting collection in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Collection deleted")
	w.WriteHeader(http.StatusNoContent)
}

// collectionNameParam decodes the {name} path segment; collection names may
// contain spaces and arrive percent-encoded.
func collectionNameParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" {
		return "", model.NewAppError("INVALID_URL_PARAM", "Collection name is missing or malformed.", "name", model.ErrInvalidInput)
	}
	return name, nil
}
