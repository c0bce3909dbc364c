package paperforge

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindValidation, "validation"},
		{KindAuthentication, "authentication"},
		{KindForbidden, "forbidden"},
		{KindNotFound, "not found"},
		{KindRateLimit, "rate limit"},
		{KindServer, "server"},
		{KindTimeout, "timeout"},
		{KindNetwork, "network"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestErrorMessage(t *testing.T) {
	withStatus := &Error{
		Kind:       KindNotFound,
		StatusCode: 404,
		Message:    "no such template",
	}
	assert.Equal(t, "paperforge: not found error (status 404): no such template", withStatus.Error())

	withoutStatus := &Error{
		Kind:    KindTimeout,
		Message: "request timed out after 30s",
	}
	assert.Equal(t, "paperforge: timeout error: request timed out after 30s", withoutStatus.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	netErr := &Error{Kind: KindNetwork, Message: "request failed", Cause: cause}

	assert.Equal(t, cause, errors.Unwrap(netErr))
	assert.True(t, errors.Is(netErr, cause))

	wrapped := fmt.Errorf("generate failed: %w", netErr)
	var apiErr *Error
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, KindNetwork, apiErr.Kind)
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, (&Error{Kind: KindNotFound}).IsNotFound())
	assert.False(t, (&Error{Kind: KindServer}).IsNotFound())

	assert.True(t, (&Error{Kind: KindAuthentication}).IsAuthFailure())
	assert.True(t, (&Error{Kind: KindForbidden}).IsAuthFailure())
	assert.False(t, (&Error{Kind: KindValidation}).IsAuthFailure())

	assert.True(t, (&Error{Kind: KindRateLimit}).IsRetryable())
	assert.True(t, (&Error{Kind: KindServer}).IsRetryable())
	assert.True(t, (&Error{Kind: KindTimeout}).IsRetryable())
	assert.True(t, (&Error{Kind: KindNetwork}).IsRetryable())
	assert.False(t, (&Error{Kind: KindValidation}).IsRetryable())
	assert.False(t, (&Error{Kind: KindNotFound}).IsRetryable())
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindAuthentication},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusTooManyRequests, KindRateLimit},
		{http.StatusInternalServerError, KindServer},
		{http.StatusTeapot, KindServer},
		{http.StatusServiceUnavailable, KindServer},
		{http.StatusMovedPermanently, KindServer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyStatus(tt.status), "status %d", tt.status)
	}
}
