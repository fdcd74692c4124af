package http

import (
	"errors"
	"net/http"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// respondError translates domain failures into HTTP status codes. Anything
// unrecognized is a 500 with the error text passed through.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSlotUnavailable):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateEmail):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case domain.IsConfigurationError(err):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
}
