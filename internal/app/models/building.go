package models

// Building represents a campus building.
// Rows are created by the offline loader, never through the HTTP API.
type Building struct {
	Number     int64    `json:"number"`
	Name       string   `json:"name" validate:"required"`
	OtherNames []string `json:"other_names"`
	PlaceID    *string  `json:"place_id"`
}
