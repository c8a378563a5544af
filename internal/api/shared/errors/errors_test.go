package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/loketh/ledger/internal/api/shared/errors"
	"github.com/loketh/ledger/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    apierrors.ErrorCode
		details string
	}{
		{"validation", domain.ErrInvalidQuota, http.StatusBadRequest, "invalid_quota", ""},
		{"authorization", domain.ErrUnauthorized, http.StatusForbidden, "unauthorized", ""},
		{"state conflict", domain.ErrSoldOut, http.StatusConflict, "sold_out", ""},
		{"payment", domain.ErrInsufficientAllowance, http.StatusPaymentRequired, "insufficient_allowance", ""},
		{
			"wrapped external call",
			fmt.Errorf("%w: %w", domain.ErrTransferFailed, errors.New("execution reverted")),
			http.StatusBadGateway,
			"transfer_failed",
			domain.ErrTransferFailed.Message + ": execution reverted",
		},
		{"expired hold", domain.ErrHoldExpired, http.StatusConflict, "hold_expired", ""},
		{
			"pending transfer",
			fmt.Errorf("%w: %w", domain.ErrTransferPending, errors.New("receipt of 0xabc not found")),
			http.StatusAccepted,
			"transfer_pending",
			domain.ErrTransferPending.Message + ": receipt of 0xabc not found",
		},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, apierrors.ErrCodeInternalError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := apierrors.FromDomain(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.details, apiErr.Details)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := apierrors.NewValidationError("quota is required")
	assert.JSONEq(t, `{"code":"validation_failed","message":"Validation failed","details":"quota is required"}`, err.Error())
}
