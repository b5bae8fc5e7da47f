package handlers_test

import (
	"net/http"
	"testing"

	"go_5_flashcard_keep/internal/handlers"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func collectionRouter(collections *mocks.CollectionService, userID string) http.Handler {
	h := handlers.NewCollectionHandler(collections, testLogger())
	router := chi.NewRouter()
	router.Use(testUserMiddleware(userID))
	router.Route("/api/v1/collections", func(r chi.Router) {
		r.Get("/", h.ListCollections)
		r.Post("/", h.SaveCollection)
		r.Get("/{name}", h.GetCollection)
		r.Delete("/{name}", h.DeleteCollection)
	})
	return router
}

func TestCollectionHandler_ListCollections(t *testing.T) {
	collections := new(mocks.CollectionService)
	summaries := []model.CollectionSummary{
		{CollectionID: uuid.New(), Name: "Chapter 1"},
		{CollectionID: uuid.New(), Name: "Chapter 2"},
	}
	collections.On("ListCollections", mock.Anything, testUserID).Return(summaries, nil).Once()

	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodGet, "/api/v1/collections", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.CollectionSummary
	decodeBody(t, rec, &got)
	assert.Equal(t, summaries, got)
}

func TestCollectionHandler_ListCollections_EmptyIsArray(t *testing.T) {
	collections := new(mocks.CollectionService)
	collections.On("ListCollections", mock.Anything, testUserID).Return(nil, nil).Once()

	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodGet, "/api/v1/collections", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	// Clients iterate the response; a nil list must still render as [].
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCollectionHandler_SaveCollection(t *testing.T) {
	collections := new(mocks.CollectionService)
	saved := &model.Collection{CollectionID: uuid.New(), UserID: testUserID, Name: "Biology"}
	collections.On("SaveCollection", mock.Anything, testUserID, "Biology", mock.MatchedBy(func(cards []model.Card) bool {
		return len(cards) == 1 && cards[0].Question == "Q"
	})).Return(saved, nil).Once()

	body := map[string]interface{}{
		"name":  "Biology",
		"cards": []map[string]string{{"question": "Q", "answer": "A"}},
	}
	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodPost, "/api/v1/collections", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp model.CollectionSummary
	decodeBody(t, rec, &resp)
	assert.Equal(t, saved.CollectionID, resp.CollectionID)
	assert.Equal(t, "Biology", resp.Name)

	collections.AssertExpectations(t)
}

func TestCollectionHandler_SaveCollection_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing name",
			body: map[string]interface{}{
				"cards": []map[string]string{{"question": "Q", "answer": "A"}},
			},
		},
		{
			name: "empty cards",
			body: map[string]interface{}{
				"name":  "Biology",
				"cards": []map[string]string{},
			},
		},
		{
			name: "card without question",
			body: map[string]interface{}{
				"name":  "Biology",
				"cards": []map[string]string{{"answer": "A"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collections := new(mocks.CollectionService)
			rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodPost, "/api/v1/collections", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			collections.AssertNotCalled(t, "SaveCollection")
		})
	}
}

func TestCollectionHandler_SaveCollection_DuplicateName(t *testing.T) {
	collections := new(mocks.CollectionService)
	collections.On("SaveCollection", mock.Anything, testUserID, "Biology", mock.Anything).
		Return(nil, model.ErrConflict).Once()

	body := map[string]interface{}{
		"name":  "Biology",
		"cards": []map[string]string{{"question": "Q", "answer": "A"}},
	}
	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodPost, "/api/v1/collections", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp model.APIErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "DUPLICATE_NAME", resp.Error.Code)
}

func TestCollectionHandler_GetCollection(t *testing.T) {
	collections := new(mocks.CollectionService)
	cards := []model.Card{{Question: "Q", Answer: "A"}}
	// The path segment arrives percent-encoded; the service sees the real name.
	collections.On("GetCollection", mock.Anything, testUserID, "Chapter 1").Return(cards, nil).Once()

	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodGet, "/api/v1/collections/Chapter%201", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.Card
	decodeBody(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Q", got[0].Question)

	collections.AssertExpectations(t)
}

func TestCollectionHandler_GetCollection_UnknownNameIsEmptyArray(t *testing.T) {
	collections := new(mocks.CollectionService)
	collections.On("GetCollection", mock.Anything, testUserID, "Nope").Return(nil, nil).Once()

	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodGet, "/api/v1/collections/Nope", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCollectionHandler_DeleteCollection(t *testing.T) {
	collections := new(mocks.CollectionService)
	collections.On("DeleteCollection", mock.Anything, testUserID, "Biology").Return(nil).Once()

	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodDelete, "/api/v1/collections/Biology", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	collections.AssertExpectations(t)
}

func TestCollectionHandler_DeleteCollection_NotFound(t *testing.T) {
	collections := new(mocks.CollectionService)
	collections.On("DeleteCollection", mock.Anything, testUserID, "Nope").Return(model.ErrNotFound).Once()

	rec := doJSON(t, collectionRouter(collections, testUserID), http.MethodDelete, "/api/v1/collections/Nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
