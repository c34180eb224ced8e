package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	assert.True(t, Is(NotFound("job"), KindNotFound))
	assert.False(t, Is(NotFound("job"), KindForbidden))
	assert.False(t, Is(errors.New("plain"), KindNotFound))
	assert.False(t, Is(nil, KindNotFound))

	wrapped := fmt.Errorf("loading dashboard: %w", Duplicate("email already exists"))
	assert.True(t, Is(wrapped, KindDuplicate))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("status", "must be accepted or rejected")))
	assert.Equal(t, KindUnhandled, KindOf(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Unhandled("save recruiter", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save recruiter")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "not_found: project not found", NotFound("project").Error())
	assert.Equal(t, "validation: progress must be between 0 and 100", Validation("progress", "must be between 0 and 100").Error())
}
