package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/timedesk/timekeeper-backend-go/internal/domain/grid"
	"github.com/timedesk/timekeeper-backend-go/internal/handler/http/response"
)

type GridHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type gridHandlerImpl struct {
	gridService grid.GridService
}

func NewGridHandler(gridService grid.GridService) GridHandler {
	return &gridHandlerImpl{
		gridService: gridService,
	}
}

func parseBuildRequest(r *http.Request) grid.BuildRequest {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	req := grid.BuildRequest{Year: year, Month: month}
	if v := r.URL.Query().Get("department_id"); v != "" {
		req.DepartmentID = &v
	}
	return req
}

// Monthly implements GridHandler.
func (h *gridHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.gridService.BuildMonthlyGrid(r.Context(), parseBuildRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements GridHandler: the same grid as an .xlsx download.
func (h *gridHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.gridService.ExportMonthlyGrid(r.Context(), parseBuildRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
