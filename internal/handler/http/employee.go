package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/department"
	"github.com/timedesk/timekeeper-backend-go/internal/domain/employee"
	"github.com/timedesk/timekeeper-backend-go/internal/handler/http/response"
)

// RosterHandler exposes the read-only roster the tracker hangs records off:
// active employees and departments with their headcounts.
type RosterHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewRosterHandler(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) RosterHandler {
	return &rosterHandlerImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// ListEmployees implements RosterHandler.
func (h *rosterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var departmentID *string
	if v := r.URL.Query().Get("department_id"); v != "" {
		departmentID = &v
	}

	result, err := h.employeeRepo.ListActive(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements RosterHandler.
func (h *rosterHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments implements RosterHandler.
func (h *rosterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
