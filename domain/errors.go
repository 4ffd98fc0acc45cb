package domain

import "errors"

// User errors
var (
	ErrDuplicateLoginID = errors.New("login id already in use")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
)

// Token errors
var (
	ErrTokenMalformed    = errors.New("malformed token")
	ErrTokenBadSignature = errors.New("token signature mismatch")
	ErrTokenExpired      = errors.New("token has expired")
)

// Authorization errors
var (
	ErrUnauthorized         = errors.New("unauthorized access")
	ErrSubscriptionNotFound = errors.New("alarm subscription not found")
)

// API error codes returned in the {code, message} error body. Each
// domain error maps to exactly one code and HTTP status.
const (
	CodeDuplicatedUserID     = "DUPLICATED_USER_ID"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeInvalidPassword      = "INVALID_PASSWORD"
	CodeMissingToken         = "MISSING_TOKEN"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeSubscriptionNotFound = "SUBSCRIPTION_NOT_FOUND"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInternalError        = "INTERNAL_ERROR"
)
