package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs the error. Client errors are logged at warn level.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	if StatusCode(err) < http.StatusInternalServerError {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}

// StatusCode maps error tags to an HTTP status code
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case inChain(err, func(e error) bool { return goerr.HasTag(e, model.ErrTagInvalidInput) }):
		return http.StatusBadRequest
	case inChain(err, func(e error) bool { return goerr.HasTag(e, model.ErrTagNotFound) }):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// inChain reports whether match holds for any link of the chain, so a tagged
// sentinel wrapped by an untagged error still counts
func inChain(err error, match func(error) bool) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if match(e) {
			return true
		}
	}
	return false
}
