package http

import (
	"encoding/json"
	"net/http"

	domain "github.com/talenthive/hr-assistant-go/internal/domain/assistant"
	"github.com/talenthive/hr-assistant-go/internal/handler/http/response"
)

type AssistantHandler interface {
	Query(w http.ResponseWriter, r *http.Request)
}

type assistantHandlerImpl struct {
	assistantService domain.AssistantService
}

func NewAssistantHandler(assistantService domain.AssistantService) AssistantHandler {
	return &assistantHandlerImpl{
		assistantService: assistantService,
	}
}

// Query handles POST /assistant/query
func (h *assistantHandlerImpl) Query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requesterID, err := requesterID(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req domain.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.assistantService.ResolveDataRequest(ctx, req.Query, requesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !result.Success {
		response.Clarification(w, result.Message, result)
		return
	}
	response.SuccessWithMessage(w, result.Message, result)
}
