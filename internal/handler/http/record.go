package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/record"
	"github.com/timedesk/timekeeper-backend-go/internal/handler/http/response"
)

type RecordHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	AssignCode(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{
		recordService: recordService,
	}
}

// CheckIn implements RecordHandler.
func (h *recordHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req record.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-in request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements RecordHandler.
func (h *recordHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req record.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-out request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// AssignCode implements RecordHandler.
func (h *recordHandlerImpl) AssignCode(w http.ResponseWriter, r *http.Request) {
	var req record.AssignCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode assign-code request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.AssignCode(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Code assigned", result)
}

// Upsert implements RecordHandler.
func (h *recordHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req record.UpsertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode upsert request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record saved", result)
}

// Get implements RecordHandler.
func (h *recordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.recordService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RecordHandler.
func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := record.ListFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}

	result, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements RecordHandler.
func (h *recordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recordService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}
