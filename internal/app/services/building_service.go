package services

import (
	"context"
	"fmt"

	"classfinder/internal/app/models"
	"classfinder/internal/app/repositories"
)

// BuildingService defines the interface for building-related operations
type BuildingService interface {
	GetAllBuildings(ctx context.Context) ([]models.Building, error)
}

// buildingServiceImpl implements the BuildingService interface
type buildingServiceImpl struct {
	buildingRepo *repositories.BuildingRepository
}

// NewBuildingService creates a new building service instance
func NewBuildingService(buildingRepo *repositories.BuildingRepository) BuildingService {
	return &buildingServiceImpl{
		buildingRepo: buildingRepo,
	}
}

// GetAllBuildings retrieves all buildings
func (s *buildingServiceImpl) GetAllBuildings(ctx context.Context) ([]models.Building, error) {
	buildings, err := s.buildingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving buildings: %w", err)
	}
	return buildings, nil
}
