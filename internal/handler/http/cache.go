package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domain "github.com/talenthive/hr-assistant-go/internal/domain/assistant"
	"github.com/talenthive/hr-assistant-go/internal/handler/http/response"
	"github.com/talenthive/hr-assistant-go/internal/pkg/validator"
)

type CacheHandler interface {
	InvalidateEmployee(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type cacheHandlerImpl struct {
	assistantService domain.AssistantService
}

func NewCacheHandler(assistantService domain.AssistantService) CacheHandler {
	return &cacheHandlerImpl{
		assistantService: assistantService,
	}
}

// InvalidateEmployee handles DELETE /cache/employees/{id}
func (h *cacheHandlerImpl) InvalidateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := chi.URLParam(r, "id")
	if validator.IsEmpty(employeeID) {
		response.BadRequest(w, "employee id is required", nil)
		return
	}

	if err := h.assistantService.InvalidateEmployee(ctx, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cache cleared for employee "+employeeID, nil)
}

// Stats handles GET /cache/stats
func (h *cacheHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.assistantService.CacheStats(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
