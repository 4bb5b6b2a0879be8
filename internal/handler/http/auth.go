package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/talenthive/hr-assistant-go/internal/handler/http/response"
	"github.com/talenthive/hr-assistant-go/internal/pkg/jwt"
	"github.com/talenthive/hr-assistant-go/internal/pkg/validator"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

// UpstreamAuthenticator verifies an employee against the HR system.
type UpstreamAuthenticator interface {
	Login(ctx context.Context, employeeID string) (string, error)
}

type authHandlerImpl struct {
	upstream   UpstreamAuthenticator
	jwtService jwt.Service
}

func NewAuthHandler(upstream UpstreamAuthenticator, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		upstream:   upstream,
		jwtService: jwtService,
	}
}

type loginRequest struct {
	EmployeeID string `json:"employee_id"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Login handles POST /auth/login. The employee is verified against the HR
// system before an API access token is issued.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	if validator.IsEmpty(req.EmployeeID) {
		response.ValidationError(w, map[string]string{"employee_id": "employee_id is required"})
		return
	}

	if _, err := h.upstream.Login(ctx, req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(req.EmployeeID, "")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, loginResponse{AccessToken: token, ExpiresAt: expiresAt})
}
