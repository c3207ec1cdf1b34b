package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
	"github.com/prospectr-app/prospectr/internal/middleware"
)

// errorLogHandler exposes the stored external-call failures.
type errorLogHandler struct {
	errorLogService portssvc.ErrorLogSvc
}

// registerErrorLogRoutes registers the error-log routes.
func registerErrorLogRoutes(rg *gin.RouterGroup, errorLogService portssvc.ErrorLogSvc) {
	h := &errorLogHandler{errorLogService: errorLogService}
	rg.GET("/errors", h.listErrorLogs)
}

func (h *errorLogHandler) listErrorLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListErrorLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	entries, err := h.errorLogService.ListErrorLogs(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list error logs", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list error logs")
		return
	}

	res := make([]dto.ErrorLogResponse, len(entries))
	for i := range entries {
		res[i] = dto.ToErrorLogResponse(&entries[i])
	}
	c.JSON(http.StatusOK, dto.ListErrorLogsResponse{Errors: res})
}
