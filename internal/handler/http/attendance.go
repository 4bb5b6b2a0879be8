package http

import (
	"net/http"

	domain "github.com/talenthive/hr-assistant-go/internal/domain/assistant"
	"github.com/talenthive/hr-assistant-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	assistantService domain.AssistantService
}

func NewAttendanceHandler(assistantService domain.AssistantService) AttendanceHandler {
	return &attendanceHandlerImpl{
		assistantService: assistantService,
	}
}

// GetMyAttendance handles GET /attendance/my. Managers get their team's
// window, everyone else their own. The optional date_range parameter takes
// today, yesterday, recent, this_month, previous_month, a single
// YYYY-MM-DD date or a YYYY-MM-DD:YYYY-MM-DD range.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requesterID, err := requesterID(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dateSpec := r.URL.Query().Get("date_range")
	if dateSpec == "" {
		dateSpec = "recent"
	}

	result, err := h.assistantService.GetAttendance(ctx, requesterID, dateSpec)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
