package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/SooLee99/safe-guide-backend/domain"
)

func performPolicyRequest(t *testing.T, path string, authenticated bool, withHeader bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) {
			c.Set(IdentityKey, &domain.User{ID: 1, LoginID: "tester", Role: domain.RoleUser})
			c.Next()
		})
	}
	r.Use(Policy(DefaultRules()))
	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"reached": true}) })

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withHeader {
		req.Header.Set("Authorization", "Bearer some-token")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPolicy(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		authenticated  bool
		withHeader     bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "join is public",
			path:           "/api/v1/users/join",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "login is public",
			path:           "/api/v1/users/login",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "subscribe is public",
			path:           "/api/v1/users/alarm/subscribe/abc-123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "alarm listing requires identity",
			path:           "/api/v1/users/alarm",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domain.CodeMissingToken,
		},
		{
			name:           "alarm listing with header but no identity",
			path:           "/api/v1/users/alarm",
			withHeader:     true,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domain.CodeInvalidToken,
		},
		{
			name:           "alarm listing with identity passes",
			path:           "/api/v1/users/alarm",
			authenticated:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "any other api route requires identity",
			path:           "/api/v2/something/else",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domain.CodeMissingToken,
		},
		{
			name:           "non-api path bypasses the policy entirely",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics path bypasses the policy entirely",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performPolicyRequest(t, tt.path, tt.authenticated, tt.withHeader)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedCode != "" {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("unmarshal body: %v", err)
				}
				if body["code"] != tt.expectedCode {
					t.Errorf("code = %q, want %q", body["code"], tt.expectedCode)
				}
				if body["message"] == "" {
					t.Error("error body has no message")
				}
			}
		})
	}
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A broad authenticated rule declared before a public one must
	// shadow it: declaration order is the tie-breaker.
	rules := []Rule{
		{Pattern: "/api/**", Require: Authenticated},
		{Pattern: "/api/*/users/join", Require: Public},
	}

	r := gin.New()
	r.Use(Policy(rules))
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/join", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401: earlier rule should win", w.Code)
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/*/users/join", "/api/v1/users/join", true},
		{"/api/*/users/join", "/api/v2/users/join", true},
		{"/api/*/users/join", "/api/v1/users/login", false},
		{"/api/*/users/join", "/api/v1/v2/users/join", false},
		{"/api/*/users/alarm/subscribe/*", "/api/v1/users/alarm/subscribe/42", true},
		{"/api/*/users/alarm/subscribe/*", "/api/v1/users/alarm/subscribe", false},
		{"/api/**", "/api/v1/anything/at/all", true},
		{"/api/**", "/api", true},
		{"/api/*/users/join", "/api/v1/users", false},
	}

	for _, tt := range tests {
		if got := matchPattern(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}
