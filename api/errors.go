package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeError maps err onto the HTTP error taxonomy. Field-level problems are
// rendered as {"errors": {field: message}}, everything else as {"error": msg}.
func writeError(c *gin.Context, err error) {
	var (
		vErr    *domain.ValidationError
		vErrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{vErr.Field: vErr.Message}})
	case errors.As(err, &vErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(vErrs)})
	case errors.As(err, &typeErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{typeErr.Field: "invalid type, expected " + typeErr.Type.String()}})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": domain.ErrForbidden.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{field: message}})
}
