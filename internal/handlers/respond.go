package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
)

// respondError maps the error taxonomy onto HTTP statuses and renders the
// same {"message": ...} envelope everywhere. Unhandled details are logged,
// not leaked.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	kind := apperrors.KindOf(err)
	message := "Server error"
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindForbidden:
		status = http.StatusForbidden
	case apperrors.KindUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.KindDuplicate:
		status = http.StatusConflict
	case apperrors.KindUnhandled:
		message = "Server error"
		if appErr != nil {
			slog.Error("unhandled error", "message", appErr.Message, "err", appErr.Err)
		} else {
			slog.Error("unhandled error", "err", err)
		}
	}
	c.JSON(status, gin.H{"message": message})
}
