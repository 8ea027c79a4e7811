// Package httpapi exposes the account and vault operations as a JSON API on
// gin, together with health, readiness and Prometheus endpoints.
package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AuthService is the account API the handlers depend on.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifySession(ctx context.Context, token string) (*auth.Claims, error)
}

// VaultService is the vault API the handlers depend on.
type VaultService interface {
	ListEntries(ctx context.Context, callerID string) ([]*models.Entry, error)
	AddEntry(ctx context.Context, callerID, title, secret string) (*models.Entry, error)
}

// Options configures NewRouter. Auth, Vault and Logger are required.
type Options struct {
	Auth    AuthService
	Vault   VaultService
	Logger  logging.Logger
	Metrics *metrics.Metrics
	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	// Ready is probed by GET /readyz; nil means always ready.
	Ready func(ctx context.Context) error
	Debug bool
}

type handler struct {
	auth    AuthService
	vault   VaultService
	log     logging.Logger
	metrics *metrics.Metrics
}

// NewRouter builds the gin engine with every route and middleware attached.
func NewRouter(opts Options) *gin.Engine {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	h := &handler{
		auth:    opts.Auth,
		vault:   opts.Vault,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}

	engine := gin.New()
	_ = engine.SetTrustedProxies(nil)
	engine.Use(gin.Recovery())
	engine.Use(loggingMiddleware(opts.Logger))
	engine.Use(metricsMiddleware(opts.Metrics))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/readyz", readyHandler(opts.Ready, opts.Logger))
	if opts.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	authGroup := engine.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.GET("/verify", bearerAuth(opts.Auth, opts.Metrics), h.verify)

	secured := engine.Group("/passwords", bearerAuth(opts.Auth, opts.Metrics))
	secured.GET("", h.listEntries)
	secured.POST("", h.addEntry)

	return engine
}

func readyHandler(ready func(context.Context) error, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil {
			if err := ready(c.Request.Context()); err != nil {
				log.Warn(c.Request.Context(), "readiness probe failed", "err", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
