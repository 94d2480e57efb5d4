package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// respondError maps service errors to HTTP statuses in one place. Domain
// errors wrap one of the generic sentinels, so handlers never need their own
// status tables.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrUnbalancedJournal), errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	case errors.As(err, &appErr):
		c.JSON(appErr.Code, dto.Fail(appErr.Message))
	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}

// bindError reports a request binding failure.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
}
