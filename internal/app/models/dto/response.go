package dto

import "classfinder/internal/app/models"

// Every payload carries a status field mirroring the HTTP status code.

// BuildingsResponse is the success envelope for GET /buildings.
type BuildingsResponse struct {
	Status    int               `json:"status"`
	Buildings []models.Building `json:"buildings"`
}

// RoomsResponse is the success envelope for GET /rooms.
type RoomsResponse struct {
	Status int                       `json:"status"`
	Rooms  []models.RoomWithBuilding `json:"rooms"`
}

// ClassesResponse is the success envelope for GET /classes/:term.
type ClassesResponse struct {
	Status  int                  `json:"status"`
	Classes []models.ClassDetail `json:"classes"`
}

// HealthResponse is the envelope for GET /health.
type HealthResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope shared by all routes. The message is
// always generic; underlying driver errors are logged server-side only.
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// NewErrorResponse creates a failure envelope for the given status code.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Status: status,
		Error:  message,
	}
}
