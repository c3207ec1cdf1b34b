package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/middleware"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Authenticated API
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group. Satellite API tokens are
// tried first; anything without a valid token falls through to JWT
// validation.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1",
		newRateLimiter(cfg),
		middleware.APITokenAuth(services.User),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	registerAccountRoutes(v1, services.Account)
	registerContactRoutes(v1, services.Contact)
	registerErrorLogRoutes(v1, services.ErrorLog)
	registerUserRoutes(v1, services.User)
}

// newRateLimiter builds the per-client-IP rate limit middleware from the
// configured formatted rate, e.g. "300-H".
func newRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.APIRateLimit)
	if err != nil {
		log.Printf("Warning: invalid API_RATE_LIMIT %q, falling back to 300-H", cfg.APIRateLimit)
		rate, _ = limiter.NewRateFromFormatted("300-H")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}
