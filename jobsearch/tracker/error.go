package tracker

import (
	"net/http"

	"github.com/jobmatchai/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("TRACKER")

// Error codes
var (
	CodeApplicationNotFound      = ErrRegistry.Register("APPLICATION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeInvalidStatus            = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown application status")
	CodeInvalidStatusTransition  = ErrRegistry.Register("INVALID_STATUS_TRANSITION", errx.TypeBusiness, http.StatusConflict, "Invalid status transition")
	CodeInvalidApplicationData   = ErrRegistry.Register("INVALID_APPLICATION_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid application data")
	CodeApplicationAlreadyExists = ErrRegistry.Register("APPLICATION_ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Application already tracked for this job")
	CodeStorageFailed            = ErrRegistry.Register("STORAGE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Application storage operation failed")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidStatusTransition() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusTransition)
}

func ErrInvalidApplicationData() *errx.Error {
	return ErrRegistry.New(CodeInvalidApplicationData)
}

func ErrApplicationAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeApplicationAlreadyExists)
}

func ErrStorageFailed() *errx.Error {
	return ErrRegistry.New(CodeStorageFailed)
}
