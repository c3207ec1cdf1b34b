package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prospectr-app/prospectr/internal/apperrors"
)

// respondError maps service errors onto HTTP statuses. Anything unrecognized
// is a 500 with a generic message; the real error stays in the logs.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Duplicate record"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrExternal):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream provider error"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindStrictJSON decodes a patch body rejecting unknown fields, so typos
// like "phnoe" fail loudly instead of silently patching nothing.
func bindStrictJSON(c *gin.Context, out any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// queryFilters extracts exact-match field filters from the query string,
// skipping the pagination parameters.
func queryFilters(c *gin.Context) map[string]string {
	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if key == "limit" || key == "offset" {
			continue
		}
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}
	return filters
}
