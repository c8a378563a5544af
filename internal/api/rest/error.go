package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/loketh/ledger/internal/api/shared/errors"
	"github.com/loketh/ledger/internal/logger"
)

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondUnauthorized sends a 401 Unauthorized response
func respondUnauthorized(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message, details...))
}

// respondAPIError sends an already structured error as a 400
func respondAPIError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadRequest, apiErr)
		return
	}
	respondBadRequest(c, err.Error())
}

// respondLedgerError maps a ledger failure to its status. Unknown failures are logged.
func respondLedgerError(c *gin.Context, err error, message string) {
	status, apiErr := apierrors.FromDomain(err)
	if status == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path))
		apiErr = apierrors.NewInternalError(message)
	}
	c.JSON(status, apiErr)
}
