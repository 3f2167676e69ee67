package services

import (
	"context"
	"fmt"

	"classfinder/internal/app/models"
	"classfinder/internal/app/repositories"
)

// RoomService defines the interface for room-related operations
type RoomService interface {
	GetAllRooms(ctx context.Context) ([]models.RoomWithBuilding, error)
}

// roomServiceImpl implements the RoomService interface
type roomServiceImpl struct {
	roomRepo *repositories.RoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo *repositories.RoomRepository) RoomService {
	return &roomServiceImpl{
		roomRepo: roomRepo,
	}
}

// GetAllRooms retrieves all rooms annotated with their buildings
func (s *roomServiceImpl) GetAllRooms(ctx context.Context) ([]models.RoomWithBuilding, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}
	return rooms, nil
}
