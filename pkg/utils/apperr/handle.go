package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
)

// Handle logs an application error. Client errors are logged at warn level.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	if StatusCode(err) < http.StatusInternalServerError {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}

// StatusCode maps domain errors to HTTP status codes
func StatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidSelection),
		errors.Is(err, model.ErrUnknownControl),
		errors.Is(err, model.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDatasetNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
