package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
	"github.com/prospectr-app/prospectr/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers all account-related routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.POST("/:id/mark/:mark", h.markAccount)
		accounts.POST("/:id/queue", h.queueContacts)
		accounts.POST("/:id/cancel", h.cancelEnrichment)
		accounts.GET("/:id/hierarchy", h.getHierarchy)
	}
}

// createAccount registers a work item manually, outside the CRM pull.
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create account", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("sfid", account.SFID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), queryFilters(c), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to get account", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAccountRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()))
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("Failed to delete account", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// markAccount flips the status named in the path, or a cleanup flag for
// "cleaned"/"enriched".
func (h *accountHandler) markAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, err := h.accountService.MarkAccount(c.Request.Context(), c.Param("id"), c.Param("mark"))
	if err != nil {
		logger.Warn("Failed to mark account", slog.String("mark", c.Param("mark")), slog.String("error", err.Error()))
		respondError(c, err, "Failed to mark account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) queueContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.accountService.QueueContacts(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("Failed to queue account", slog.String("error", err.Error()))
		respondError(c, err, "Failed to queue account")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *accountHandler) cancelEnrichment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.accountService.CancelEnrichment(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("Failed to cancel enrichment", slog.String("error", err.Error()))
		respondError(c, err, "Failed to cancel enrichment")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *accountHandler) getHierarchy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hierarchy, err := h.accountService.GetHierarchy(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to get hierarchy", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve hierarchy")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hierarchy": hierarchy})
}
