package models

// Room represents a room inside a building. Keyed by (building_number, name);
// deleting a building cascades to its rooms.
type Room struct {
	BuildingNumber int64   `json:"building_number" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Number         *string `json:"number"`
	Floor          *int32  `json:"floor"`
	Capacity       *int32  `json:"capacity"`
}

// RoomWithBuilding is a room annotated with its building's fields,
// as produced by the rooms/buildings join.
type RoomWithBuilding struct {
	Room
	Building Building `json:"building"`
}
