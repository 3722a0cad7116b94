package posting

import (
	"net/http"

	"github.com/jobmatchai/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("POSTING")

// Error codes
var (
	CodeInvalidQuery = ErrRegistry.Register("INVALID_QUERY", errx.TypeValidation, http.StatusBadRequest, "Job title and location are required")
	CodeSourceFailed = ErrRegistry.Register("SOURCE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Upstream job board request failed")
	CodeCacheFailed  = ErrRegistry.Register("CACHE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Job cache operation failed")
)

// Helper functions
func ErrInvalidQuery() *errx.Error {
	return ErrRegistry.New(CodeInvalidQuery)
}

func ErrSourceFailed() *errx.Error {
	return ErrRegistry.New(CodeSourceFailed)
}
