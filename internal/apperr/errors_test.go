package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(BadRequest("nope")))
	assert.Equal(t, http.StatusForbidden, StatusOf(Forbidden("nope")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("nope")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Internal(errors.New("db down"))))

	// bare sentinels from the repository layer
	assert.Equal(t, http.StatusNotFound, StatusOf(ErrNotFound))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("anything")))
}

func TestMessageOfHidesInternalCause(t *testing.T) {
	err := Internal(errors.New("connection refused to 10.0.0.1"))
	assert.Equal(t, "Server error", MessageOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSentinelMatching(t *testing.T) {
	err := NotFound("Job not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "Job not found", MessageOf(err))

	wrapped := Wrap(http.StatusBadGateway, "upstream failed", errors.New("boom"))
	assert.Equal(t, http.StatusBadGateway, StatusOf(wrapped))
	assert.Equal(t, "upstream failed", MessageOf(wrapped))
}
