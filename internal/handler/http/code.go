package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/code"
	"github.com/timedesk/timekeeper-backend-go/internal/handler/http/response"
)

type CodeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type codeHandlerImpl struct {
	codeService code.CodeService
}

func NewCodeHandler(codeService code.CodeService) CodeHandler {
	return &codeHandlerImpl{
		codeService: codeService,
	}
}

// Create implements CodeHandler.
func (h *codeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req code.CreateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create-code request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.codeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance code created", result)
}

// Update implements CodeHandler.
func (h *codeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req code.UpdateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update-code request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Code = chi.URLParam(r, "code")

	result, err := h.codeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance code updated", result)
}

// List implements CodeHandler. Pass ?include_inactive=true to see the whole
// catalog, retired codes included.
func (h *codeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		result interface{}
		err    error
	)

	if r.URL.Query().Get("include_inactive") == "true" {
		result, err = h.codeService.List(r.Context())
	} else {
		result, err = h.codeService.ListActive(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Deactivate implements CodeHandler.
func (h *codeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "code")

	if err := h.codeService.Deactivate(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance code deactivated", nil)
}
