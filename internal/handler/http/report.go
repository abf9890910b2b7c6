package http

import (
	"net/http"

	"github.com/timedesk/timekeeper-backend-go/internal/domain/report"
	"github.com/timedesk/timekeeper-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	DepartmentBreakdown(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func parseSummaryRequest(r *http.Request) report.SummaryRequest {
	req := report.SummaryRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		req.DepartmentID = &v
	}
	return req
}

// Summary implements ReportHandler.
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Summarize(r.Context(), parseSummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentBreakdown implements ReportHandler.
func (h *reportHandlerImpl) DepartmentBreakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SummarizeByDepartment(r.Context(), parseSummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
