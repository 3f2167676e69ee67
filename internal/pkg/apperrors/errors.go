package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Term errors
	ErrTermNotAllowed = errors.New("term is not in the allow-list")

	// Database errors
	ErrConnectionFailed = errors.New("database connection failed")
	ErrQueryFailed      = errors.New("database query failed")
)

// Building errors
var (
	ErrBuildingNotFound      = errors.New("building not found")
	ErrBuildingAlreadyExists = errors.New("building with this number or name already exists")
)

// Room errors
var (
	ErrRoomAlreadyExists = errors.New("room with this name already exists")
)

// Class errors
var (
	ErrClassNotFound      = errors.New("class not found")
	ErrClassAlreadyExists = errors.New("class with this number or code already exists")
	ErrInvalidClassMode   = errors.New("class mode is not one of the allowed values")
)
