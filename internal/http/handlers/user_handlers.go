package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SooLee99/safe-guide-backend/domain"
	"github.com/SooLee99/safe-guide-backend/internal/http/middleware"
)

// UserHandlers handles the user-facing HTTP endpoints
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// JoinRequest represents a registration request
type JoinRequest struct {
	LoginID     string `json:"loginId" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	UserName    string `json:"userName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Birth       string `json:"birth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the outward view of a user. The password hash is
// never serialized.
type UserResponse struct {
	LoginID      string      `json:"loginId"`
	UserName     string      `json:"userName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Birth        string      `json:"birth"`
	Gender       string      `json:"gender"`
	Address      string      `json:"address"`
	Role         domain.Role `json:"role"`
	RegisteredAt time.Time   `json:"registeredAt"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		LoginID:      user.LoginID,
		UserName:     user.UserName,
		PhoneNumber:  user.PhoneNumber,
		Birth:        user.Birth,
		Gender:       user.Gender,
		Address:      user.Address,
		Role:         user.Role,
		RegisteredAt: user.RegisteredAt,
	}
}

// Join handles user registration
func (h *UserHandlers) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    domain.CodeInvalidRequest,
			"message": err.Error(),
		})
		return
	}

	user, err := h.userSvc.Register(c.Request.Context(), domain.RegisterInput{
		LoginID:     req.LoginID,
		Password:    req.Password,
		UserName:    req.UserName,
		PhoneNumber: req.PhoneNumber,
		Birth:       req.Birth,
		Gender:      req.Gender,
		Address:     req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Login handles user login
func (h *UserHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    domain.CodeInvalidRequest,
			"message": err.Error(),
		})
		return
	}

	token, err := h.userSvc.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListAlarms handles the paginated alarm listing for the
// authenticated caller.
func (h *UserHandlers) ListAlarms(c *gin.Context) {
	user, ok := middleware.IdentityFrom(c)
	if !ok {
		// The policy enforces authentication upstream; reaching here
		// without an identity means the route was wired outside it.
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    domain.CodeUnauthorized,
			"message": "authentication required",
		})
		return
	}

	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", 20)

	alarms, err := h.userSvc.ListAlarms(c.Request.Context(), user, page, size)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, alarms)
}

// Subscribe handles alarm subscription confirmation. Public: it is
// reached from confirmation links without a token.
func (h *UserHandlers) Subscribe(c *gin.Context) {
	id := c.Param("id")

	if err := h.userSvc.ConfirmAlarmSubscription(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     id,
		"status": "subscribed",
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
