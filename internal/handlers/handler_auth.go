package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
	"github.com/prospectr-app/prospectr/internal/middleware"
	"github.com/prospectr-app/prospectr/internal/platform/config"
	"github.com/prospectr-app/prospectr/internal/utils"
)

// authHandler handles registration, confirmation and login.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &authHandler{userService: services.User, cfg: cfg}

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/confirm", h.confirm)
		auth.GET("/authorize", h.authorize)
	}
}

// register creates a user and returns their satellite API token. The token
// is only ever shown here.
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Registration failed", slog.String("email", req.Email), slog.String("error", err.Error()))
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:   user.UserID,
		Email:    user.Email,
		APIToken: user.APIToken,
	})
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.cfg.JWTExpiryDuration),
	})
}

// authorize lets a satellite verify its opaque API token. The token rides
// in the same "Basic <token>" header the satellites use against /api/v1.
func (h *authHandler) authorize(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "basic" {
		c.JSON(http.StatusForbidden, gin.H{"error": "API token required"})
		return
	}

	user, err := h.userService.Authorize(c.Request.Context(), parts[1])
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid API token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userID": user.UserID})
}

// confirm completes registration via the emailed confirmation link.
func (h *authHandler) confirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email := c.Query("email")
	cid := c.Query("cid")
	if email == "" || cid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and cid query parameters required"})
		return
	}

	if err := h.userService.Confirm(c.Request.Context(), email, cid); err != nil {
		logger.Warn("Confirmation failed", slog.String("email", email), slog.String("error", err.Error()))
		respondError(c, err, "Failed to confirm")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}
