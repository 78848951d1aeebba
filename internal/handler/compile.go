// internal/handler/compile.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/zynk/internal/domain"
	"github.com/dangerclosesec/zynk/internal/service"
	"github.com/dangerclosesec/zynk/lang/parser"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type CompileHandler struct {
	service *service.CompileService
}

func NewCompileHandler(service *service.CompileService) *CompileHandler {
	return &CompileHandler{
		service: service,
	}
}

// Compile compiles submitted source and returns the generated code together
// with any parse errors. Parse errors are part of a successful response;
// only malformed requests and tokenizer failures map to error statuses.
func (h *CompileHandler) Compile(w http.ResponseWriter, r *http.Request) {
	var input service.CompileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.service.Compile(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrSourceTooLarge):
			respondWithError(w, http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, parser.ErrIntegerOverflow):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Compile error",
				"error", err, "requestID", chimw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Failed to compile source")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}
