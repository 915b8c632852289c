package errors

import (
	"net/http"
	"testing"

	"steamcache/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_MatchesStoreUnavailable(t *testing.T) {
	driverErr := errors.New("connection refused")
	err := errors.Wrap(NewStoreError(driverErr, "failed to upsert game"), "catalog")

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, driverErr))
	assert.False(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.True(t, IsRetryable(err))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestUpstreamError_MatchesUpstreamUnavailable(t *testing.T) {
	err := NewUpstreamError("appreviews", http.StatusTooManyRequests, nil)

	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.True(t, IsUpstreamFailure(err))
	assert.True(t, IsRetryable(err))
	assert.Contains(t, err.Error(), "status 429")

	upstreamErr, ok := errors.AsType[*UpstreamError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode())
}

func TestIsUpstreamFailure_InvalidPayload(t *testing.T) {
	err := ErrInvalidPayload.WrapMessage("missing app id")

	assert.True(t, IsUpstreamFailure(err))
	assert.False(t, IsRetryable(err))
	assert.False(t, IsUpstreamFailure(ErrGameNotFound))
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("pageSize must be positive")

	assert.Equal(t, "pageSize must be positive", err.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), err.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidCursor))
}
