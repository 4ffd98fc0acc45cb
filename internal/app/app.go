package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/SooLee99/safe-guide-backend/internal/config"
	httpx "github.com/SooLee99/safe-guide-backend/internal/http"
	"github.com/SooLee99/safe-guide-backend/internal/http/handlers"
	"github.com/SooLee99/safe-guide-backend/internal/http/middleware"
)

// Run wires the application together and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	userH := handlers.NewUserHandlers(c.UserSvc)
	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.UserRepo, logger)
	reg := prometheus.NewRegistry()

	r := httpx.BuildRouter(userH, jwtMW, middleware.DefaultRules(), logger, reg, cfg.APIVersion)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
