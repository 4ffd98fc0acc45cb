package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// Requirement is what a route demands from the request's identity.
type Requirement int

const (
	// Public routes need no identity.
	Public Requirement = iota
	// Authenticated routes reject requests without a verified identity.
	Authenticated
)

// Rule maps an Ant-style route pattern to a requirement. `*` matches
// exactly one path segment, `**` matches any remaining suffix.
type Rule struct {
	Pattern string
	Require Requirement
}

// APIPrefix scopes the policy. Paths outside it bypass enforcement
// entirely, a legacy carve-out kept on purpose: /health and /metrics
// depend on it.
const APIPrefix = "/api/"

// DefaultRules returns the route policy, evaluated in declaration
// order with the first matching pattern winning.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: "/api/*/users/join", Require: Public},
		{Pattern: "/api/*/users/login", Require: Public},
		{Pattern: "/api/*/users/alarm/subscribe/*", Require: Public},
		{Pattern: "/api/**", Require: Authenticated},
	}
}

// Policy creates the authorization-policy middleware. It is the only
// place that rejects unauthenticated requests; the authentication
// filter upstream just populates the identity.
func Policy(rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, APIPrefix) {
			c.Next()
			return
		}

		for _, rule := range rules {
			if !matchPattern(rule.Pattern, path) {
				continue
			}
			if rule.Require == Authenticated {
				if _, ok := IdentityFrom(c); !ok {
					rejectUnauthenticated(c)
					return
				}
			}
			c.Next()
			return
		}

		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	code := domain.CodeInvalidToken
	message := "token is invalid or the identity is disabled"
	if c.GetHeader("Authorization") == "" {
		code = domain.CodeMissingToken
		message = "authorization token is required"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    code,
		"message": message,
	})
}

// matchPattern matches an Ant-style pattern against a path. Segments
// are compared one by one; `*` consumes a single non-empty segment
// and `**` consumes the rest of the path.
func matchPattern(pattern, path string) bool {
	patParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	for i, pat := range patParts {
		if pat == "**" {
			return true
		}
		if i >= len(pathParts) {
			return false
		}
		if pat == "*" {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if pat != pathParts[i] {
			return false
		}
	}

	return len(patParts) == len(pathParts)
}
