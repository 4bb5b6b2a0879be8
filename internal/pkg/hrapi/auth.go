package hrapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	EmployeeID string `json:"empId"`
	Password   string `json:"password"`
	MACAddress string `json:"macAddress"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates an employee against the HR system and returns the
// bearer token. The token's signature and expiry are verified locally
// before it is handed out.
func (c *Client) Login(ctx context.Context, employeeID string) (string, error) {
	payload := loginRequest{
		EmployeeID: employeeID,
		Password:   c.defaultPassword,
		MACAddress: c.macAddress,
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", payload, &resp); err != nil {
		return "", fmt.Errorf("login for %s: %w", employeeID, err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login for %s: %w: empty token", employeeID, ErrBadResponse)
	}

	if c.jwtSecret != "" {
		if _, err := c.VerifyToken(resp.Token); err != nil {
			return "", fmt.Errorf("login for %s: %w", employeeID, err)
		}
	}
	return resp.Token, nil
}

// TokenClaims is the subset of upstream token claims the assistant cares
// about.
type TokenClaims struct {
	EmployeeID string `json:"empId"`
	jwt.RegisteredClaims
}

// VerifyToken checks the HS256 signature and standard claims of an
// upstream token.
func (c *Client) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(c.jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return claims, nil
}
