package http

import (
	"fmt"
	"net/http"

	domainassistant "github.com/talenthive/hr-assistant-go/internal/domain/assistant"
	"github.com/talenthive/hr-assistant-go/internal/domain/report"
	"github.com/talenthive/hr-assistant-go/internal/handler/http/response"
	reportservice "github.com/talenthive/hr-assistant-go/internal/service/report"
)

type ReportHandler interface {
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	assistantService domainassistant.AssistantService
	reportService    *reportservice.Service
}

func NewReportHandler(assistantService domainassistant.AssistantService, reportService *reportservice.Service) ReportHandler {
	return &reportHandlerImpl{
		assistantService: assistantService,
		reportService:    reportService,
	}
}

// GetAttendanceReport handles GET /reports/attendance. Query parameters:
// date_range, report_type (all|present|absent|late), company_id, branch_id,
// department_id, and format (json|xlsx|pdf). Exports are only available for
// the full report type.
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reqID, err := requesterID(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	q := r.URL.Query()
	req := report.Request{
		DateSpec: q.Get("date_range"),
		Type:     q.Get("report_type"),
		Filters: report.Filters{
			CompanyID:    q.Get("company_id"),
			BranchID:     q.Get("branch_id"),
			DepartmentID: q.Get("department_id"),
		},
	}
	if req.DateSpec == "" {
		req.DateSpec = "today"
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	format, err := reportservice.ParseFormat(q.Get("format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.assistantService.GenerateAttendanceReport(ctx, reqID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if format == reportservice.FormatJSON {
		response.Success(w, result)
		return
	}

	full, ok := result.Summary.(report.FullSummary)
	if !ok {
		response.BadRequest(w, "exports are only available for report_type=all", nil)
		return
	}

	switch format {
	case reportservice.FormatXLSX:
		data, err := h.reportService.ExportXLSX(full)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-report-%s.xlsx"`, result.ReportID))
		_, _ = w.Write(data)
	case reportservice.FormatPDF:
		data, err := h.reportService.ExportPDF(full)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-report-%s.pdf"`, result.ReportID))
		_, _ = w.Write(data)
	}
}
