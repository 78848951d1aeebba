// internal/handler/snippet.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/zynk/internal/domain"
	"github.com/dangerclosesec/zynk/internal/model"
	"github.com/dangerclosesec/zynk/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SnippetHandler struct {
	service *service.SnippetService
}

func NewSnippetHandler(service *service.SnippetService) *SnippetHandler {
	return &SnippetHandler{
		service: service,
	}
}

// CreateSnippet stores a program and its generated code
func (h *SnippetHandler) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	var input service.CreateSnippetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}

// GetSnippet returns a stored snippet by ID
func (h *SnippetHandler) GetSnippet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid snippet ID")
		return
	}

	snippet, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, snippet)
}

// ListSnippetsResponse is a page of snippets
type ListSnippetsResponse struct {
	Snippets []*model.Snippet `json:"snippets"`
	Total    int64            `json:"total"`
}

// ListSnippets returns snippets, newest first, with offset/limit pagination
func (h *SnippetHandler) ListSnippets(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	snippets, total, err := h.service.List(r.Context(), offset, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if snippets == nil {
		snippets = []*model.Snippet{}
	}

	respondWithJSON(w, http.StatusOK, ListSnippetsResponse{
		Snippets: snippets,
		Total:    total,
	})
}

// DeleteSnippet removes a stored snippet
func (h *SnippetHandler) DeleteSnippet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid snippet ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Snippet deleted",
	})
}

func (h *SnippetHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSnippetNotFound):
		respondWithError(w, http.StatusNotFound, "Snippet not found")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrSourceTooLarge):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
