package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SooLee99/safe-guide-backend/domain"
	"github.com/SooLee99/safe-guide-backend/internal/http/middleware"
	"github.com/SooLee99/safe-guide-backend/internal/mocks"
)

func newTestRouter(t *testing.T, svc domain.UserService, identity *domain.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewUserHandlers(svc)
	r := gin.New()
	if identity != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.IdentityKey, identity)
			c.Next()
		})
	}
	users := r.Group("/api/v1/users")
	users.POST("/join", h.Join)
	users.POST("/login", h.Login)
	users.GET("/alarm", h.ListAlarms)
	users.GET("/alarm/subscribe/:id", h.Subscribe)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandlers_Join(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockUserService)
		expectedStatus int
		expectedCode   string
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "successful join returns identity without password",
			body: JoinRequest{
				LoginID:     "alice",
				Password:    "password123",
				UserName:    "Alice",
				PhoneNumber: "010-1234-5678",
				Birth:       "1992-03-04",
				Gender:      "F",
				Address:     "Seoul",
			},
			setupMocks: func(svc *mocks.MockUserService) {
				svc.RegisterFunc = func(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
					return &domain.User{
						ID:           1,
						LoginID:      input.LoginID,
						PasswordHash: "$2a$10$secret",
						UserName:     input.UserName,
						PhoneNumber:  input.PhoneNumber,
						Birth:        input.Birth,
						Gender:       input.Gender,
						Address:      input.Address,
						Role:         domain.RoleUser,
						RegisteredAt: time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				if body["loginId"] != "alice" {
					t.Errorf("loginId = %v", body["loginId"])
				}
				if body["role"] != "USER" {
					t.Errorf("role = %v", body["role"])
				}
				raw, _ := json.Marshal(body)
				if bytes.Contains(raw, []byte("secret")) || bytes.Contains(raw, []byte("password")) {
					t.Errorf("password material leaked: %s", raw)
				}
			},
		},
		{
			name: "duplicate login id maps to conflict",
			body: JoinRequest{LoginID: "alice", Password: "password123", UserName: "Alice"},
			setupMocks: func(svc *mocks.MockUserService) {
				svc.RegisterFunc = func(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
					return nil, domain.ErrDuplicateLoginID
				}
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   domain.CodeDuplicatedUserID,
		},
		{
			name:           "missing required fields",
			body:           map[string]string{"loginId": "alice"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domain.CodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockUserService()
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			r := newTestRouter(t, svc, nil)

			w := doJSON(t, r, http.MethodPost, "/api/v1/users/join", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.expectedStatus, w.Body.String())
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if tt.expectedCode != "" && body["code"] != tt.expectedCode {
				t.Errorf("code = %v, want %v", body["code"], tt.expectedCode)
			}
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}
}

func TestUserHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockUserService)
		expectedStatus int
		expectedCode   string
		expectedToken  string
	}{
		{
			name: "successful login returns token",
			body: LoginRequest{LoginID: "alice", Password: "password123"},
			setupMocks: func(svc *mocks.MockUserService) {
				svc.LoginFunc = func(ctx context.Context, loginID, password string) (string, error) {
					return "signed.jwt.token", nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "signed.jwt.token",
		},
		{
			name: "unknown user maps to not found",
			body: LoginRequest{LoginID: "ghost", Password: "password123"},
			setupMocks: func(svc *mocks.MockUserService) {
				svc.LoginFunc = func(ctx context.Context, loginID, password string) (string, error) {
					return "", domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   domain.CodeUserNotFound,
		},
		{
			name: "wrong password maps to unauthorized",
			body: LoginRequest{LoginID: "alice", Password: "wrong"},
			setupMocks: func(svc *mocks.MockUserService) {
				svc.LoginFunc = func(ctx context.Context, loginID, password string) (string, error) {
					return "", domain.ErrInvalidPassword
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domain.CodeInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockUserService()
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			r := newTestRouter(t, svc, nil)

			w := doJSON(t, r, http.MethodPost, "/api/v1/users/login", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.expectedStatus, w.Body.String())
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if tt.expectedCode != "" && body["code"] != tt.expectedCode {
				t.Errorf("code = %v, want %v", body["code"], tt.expectedCode)
			}
			if tt.expectedToken != "" && body["token"] != tt.expectedToken {
				t.Errorf("token = %v, want %v", body["token"], tt.expectedToken)
			}
		})
	}
}

func TestUserHandlers_ListAlarms(t *testing.T) {
	identity := &domain.User{ID: 1, LoginID: "alice", Role: domain.RoleUser}

	svc := mocks.NewMockUserService()
	var gotPage, gotSize int
	svc.ListAlarmsFunc = func(ctx context.Context, user *domain.User, page, size int) (*domain.Page[domain.Alarm], error) {
		gotPage, gotSize = page, size
		return &domain.Page[domain.Alarm]{
			Content:    []domain.Alarm{{ID: 7, OwnerLoginID: user.LoginID, Payload: `{"kind":"fall"}`}},
			Page:       page,
			Size:       size,
			TotalCount: 1,
			TotalPages: 1,
		}, nil
	}

	r := newTestRouter(t, svc, identity)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/alarm?page=3&size=5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if gotPage != 3 || gotSize != 5 {
		t.Errorf("paging = (%d,%d), want (3,5)", gotPage, gotSize)
	}

	var page domain.Page[domain.Alarm]
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(page.Content) != 1 || page.Content[0].OwnerLoginID != "alice" {
		t.Errorf("unexpected page content: %+v", page.Content)
	}
}

func TestUserHandlers_ListAlarms_NoIdentity(t *testing.T) {
	r := newTestRouter(t, mocks.NewMockUserService(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/alarm", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUserHandlers_Subscribe(t *testing.T) {
	svc := mocks.NewMockUserService()
	svc.ConfirmAlarmSubscriptionFunc = func(ctx context.Context, id string) error {
		if id == "missing" {
			return domain.ErrSubscriptionNotFound
		}
		return nil
	}
	r := newTestRouter(t, svc, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/alarm/subscribe/some-id", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "subscribed" {
		t.Errorf("status field = %v, want subscribed", body["status"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/alarm/subscribe/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
