package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/SooLee99/safe-guide-backend/internal/http/handlers"
	"github.com/SooLee99/safe-guide-backend/internal/http/middleware"
)

// BuildRouter assembles the gin engine. Ordering matters: the
// authentication filter populates the identity, then the policy
// decides whether the route may proceed. /health and /metrics sit
// outside the API prefix and are bypassed by the policy.
func BuildRouter(uh *handlers.UserHandlers, jwtmw *middleware.AuthMW, rules []middleware.Rule, logger *zap.Logger, reg *prometheus.Registry, apiVersion string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.NewMetrics(reg).Handler())
	r.Use(jwtmw.WithJWT())
	r.Use(middleware.Policy(rules))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	users := r.Group("/api/" + apiVersion + "/users")
	users.POST("/join", uh.Join)
	users.POST("/login", uh.Login)
	users.GET("/alarm", uh.ListAlarms)
	users.GET("/alarm/subscribe/:id", uh.Subscribe)

	return r
}
