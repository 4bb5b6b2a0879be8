package hrapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:         server.URL,
		Timeout:         5 * time.Second,
		DefaultPassword: "pass",
		MACAddress:      "00:11:22:33:44:55",
	})
}

func respond(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": 200,
		"message":    "ok",
		"data":       json.RawMessage(raw),
	})
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "NAS101", body.EmployeeID)
		assert.Equal(t, "pass", body.Password)
		assert.Equal(t, "00:11:22:33:44:55", body.MACAddress)

		respond(w, map[string]string{"token": "upstream-token"})
	})

	token, err := client.Login(context.Background(), "NAS101")
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", token)
}

func TestLogin_EmptyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		respond(w, map[string]string{"token": ""})
	})

	_, err := client.Login(context.Background(), "NAS101")
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestFetchProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees/NAS101", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		respond(w, map[string]any{
			"_id":        "db-101",
			"first_name": "Sarah",
			"last_name":  "Johnson",
			"grade":      "L4",
		})
	})

	rec, err := client.FetchProfile(context.Background(), "tok", "NAS101")
	require.NoError(t, err)
	assert.Equal(t, "db-101", rec.ID)
	assert.Equal(t, "Sarah", rec.FirstName)
	assert.Equal(t, "NAS101", rec.EmployeeID, "a missing employee id is backfilled from the request")
}

func TestFetchTeamRoster(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees/MGR201/team", r.URL.Path)

		respond(w, map[string]any{
			"teamMembers": []map[string]string{
				{"empId": "NAS101", "firstName": "Sarah", "lastName": "Johnson", "position": "Engineer"},
				{"empId": "", "firstName": "Ghost"},
				{"empId": "NAS102", "firstName": "James", "lastName": "Lee"},
			},
		})
	})

	roster, err := client.FetchTeamRoster(context.Background(), "tok", "MGR201")
	require.NoError(t, err)
	assert.Equal(t, []string{"NAS101", "NAS102"}, roster.MemberIDs, "members without an id are dropped")
	require.Len(t, roster.Members, 2)
	assert.Equal(t, "Engineer", roster.Members[0].Position)
}

func TestFetchAttendance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/attendance/search", r.URL.Path)

		var body struct {
			EmployeeIDs []string `json:"empIds"`
			StartDate   string   `json:"startDate"`
			EndDate     string   `json:"endDate"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"NAS101"}, body.EmployeeIDs)
		assert.Equal(t, "2025-03-03", body.StartDate)

		respond(w, []map[string]any{
			{
				"empId":        "NAS101",
				"date":         "2025-03-03",
				"punchIn":      "09:15",
				"punchOut":     "2025-03-03 17:30:00",
				"status":       "Present",
				"workingHours": 8.25,
				"isLate":       true,
				"lateMinutes":  15,
			},
			{
				"empId":  "NAS101",
				"date":   "2025-03-04",
				"status": "Half Day",
			},
		})
	})

	rng := attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-07"}
	events, err := client.FetchAttendance(context.Background(), "tok", []string{"NAS101"}, rng)
	require.NoError(t, err)
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, attendance.StatusPresent, first.Status)
	assert.True(t, first.Late)
	require.NotNil(t, first.PunchIn)
	assert.Equal(t, "2025-03-03 09:15", first.PunchIn.Format("2006-01-02 15:04"))
	require.NotNil(t, first.PunchOut)
	assert.Equal(t, "2025-03-03 17:30", first.PunchOut.Format("2006-01-02 15:04"))

	second := events[1]
	assert.Equal(t, attendance.StatusHalfDay, second.Status)
	assert.Nil(t, second.PunchIn)
}

func TestFetchCompanyAttendance_BackfillsCompanyID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/attendance/company/c1", r.URL.Path)
		assert.Equal(t, "2025-03-03", r.URL.Query().Get("startDate"))

		respond(w, []map[string]any{
			{"empId": "NAS101", "date": "2025-03-03", "status": "present"},
		})
	})

	rng := attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-07"}
	events, err := client.FetchCompanyAttendance(context.Background(), "tok", "c1", rng)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "c1", events[0].CompanyID)
}

func TestFetchOrgStructure_FlattensDepartmentGroups(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/organizations/org-1/structure", r.URL.Path)

		respond(w, map[string]any{
			"companies": []map[string]any{{
				"_id":  "c1",
				"name": "Acme Corp",
				"branches": []map[string]any{{
					"_id":        "b1",
					"branchName": "Main Branch",
					"departmentGroups": []map[string]any{
						{"departments": []map[string]string{
							{"departmentId": "d1", "departmentName": "Engineering"},
						}},
						{"departments": []map[string]string{
							{"departmentId": "d2", "departmentName": "Sales"},
						}},
					},
				}},
			}},
		})
	})

	org, err := client.FetchOrgStructure(context.Background(), "tok", "org-1")
	require.NoError(t, err)
	require.Len(t, org, 1)
	require.Len(t, org[0].Branches, 1)
	assert.Equal(t, "Main Branch", org[0].Branches[0].Name)
	require.Len(t, org[0].Branches[0].Departments, 2)
	assert.Equal(t, "Sales", org[0].Branches[0].Departments[1].Name)
}

func TestDo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrAuth},
		{"forbidden", http.StatusForbidden, ErrAuth},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
		{"bad request", http.StatusBadRequest, ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.FetchProfile(context.Background(), "tok", "NAS101")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDo_EnvelopeNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 404,
			"message":    "no such employee",
		})
	})

	_, err := client.FetchProfile(context.Background(), "tok", "NAS999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func signedToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()

	claims := TokenClaims{
		EmployeeID: "NAS101",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyToken(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://hr.invalid", JWTSecret: "secret"})

	claims, err := client.VerifyToken(signedToken(t, "secret", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "NAS101", claims.EmployeeID)

	_, err = client.VerifyToken(signedToken(t, "wrong-secret", time.Hour))
	assert.ErrorIs(t, err, ErrAuth)

	_, err = client.VerifyToken(signedToken(t, "secret", -time.Hour))
	assert.ErrorIs(t, err, ErrAuth, "an expired token is rejected")
}

func TestParsePunch(t *testing.T) {
	assert.Nil(t, parsePunch("2025-03-03", ""))
	assert.Nil(t, parsePunch("2025-03-03", "not a time"))

	rfc := parsePunch("2025-03-03", "2025-03-03T09:00:00Z")
	require.NotNil(t, rfc)
	assert.Equal(t, 9, rfc.Hour())

	bare := parsePunch("2025-03-03", "09:15:30")
	require.NotNil(t, bare)
	assert.Equal(t, "2025-03-03 09:15:30", bare.Format("2006-01-02 15:04:05"))
}
