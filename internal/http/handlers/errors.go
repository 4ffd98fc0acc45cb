package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// writeError maps a service error to its fixed status code and
// {code, message} body. Anything unclassified becomes a 500 with no
// internal detail leaked.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateLoginID):
		c.JSON(http.StatusConflict, gin.H{
			"code":    domain.CodeDuplicatedUserID,
			"message": "login id is already registered",
		})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"code":    domain.CodeUserNotFound,
			"message": "user not found",
		})
	case errors.Is(err, domain.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    domain.CodeInvalidPassword,
			"message": "password does not match",
		})
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"code":    domain.CodeSubscriptionNotFound,
			"message": "alarm subscription not found",
		})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    domain.CodeUnauthorized,
			"message": "authentication required",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    domain.CodeInternalError,
			"message": "internal server error",
		})
	}
}
