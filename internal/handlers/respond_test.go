package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, err)
		return w
	}

	t.Run("kinds map to statuses", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{apperrors.Validation("status", "must be accepted or rejected"), http.StatusBadRequest},
			{apperrors.NotFound("job"), http.StatusNotFound},
			{apperrors.Forbidden("not authorized"), http.StatusForbidden},
			{apperrors.Unauthorized("invalid email or password"), http.StatusUnauthorized},
			{apperrors.Duplicate("email already exists"), http.StatusConflict},
		}
		for _, tc := range cases {
			w := run(tc.err)
			assert.Equal(t, tc.status, w.Code)
		}
	})

	t.Run("wrapped errors keep status and message", func(t *testing.T) {
		w := run(fmt.Errorf("loading job: %w", apperrors.NotFound("job")))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "job not found")
	})

	t.Run("unhandled details are not leaked", func(t *testing.T) {
		w := run(apperrors.Unhandled("save recruiter", errors.New("connection reset")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Server error")
		assert.NotContains(t, w.Body.String(), "connection reset")
	})

	t.Run("foreign errors are a generic 500", func(t *testing.T) {
		w := run(errors.New("plain"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Server error")
	})
}
