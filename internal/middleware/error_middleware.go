package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classfinder/internal/app/models/dto"
	"classfinder/internal/pkg/apperrors"
)

// HandleAPIError converts service-layer errors into the uniform envelope.
// Database failures collapse into a 500 with the caller-supplied generic
// message; the underlying cause stays in the server logs.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrTermNotAllowed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Unknown term"))
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error()))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Resource not found"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback))
	}
}
