package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var ErrUnknownUser = errors.Wrap(NotFoundError, "unknown user")

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Upload lifecycle related errors
var (
	// InvalidStateError is returned when a lifecycle transition is requested
	// on an upload that is not in the required state. Rendered as 409.
	InvalidStateError = errors.Wrap(ConflictError, "upload is not in a state that allows this operation")

	ErrUploadNotPending = errors.Wrap(InvalidStateError, "upload is not pending")

	// ErrUnparsableUploadFile is returned when the file cannot be parsed at
	// all (unreadable content, missing or empty header line). The upload
	// transitions to ERROR and no items are created.
	ErrUnparsableUploadFile = errors.New("upload file cannot be parsed")
)

// File intake related errors
var (
	ErrFileTooLarge        = errors.Wrap(BadParameterError, "file exceeds the maximum allowed size")
	ErrUnsupportedFileType = errors.Wrap(BadParameterError, "file type is not supported")
)
