package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classfinder/internal/app/models/dto"
	"classfinder/internal/app/services"
	"classfinder/internal/middleware"
)

// BuildingController handles building-related requests
type BuildingController struct {
	buildingService services.BuildingService
}

// NewBuildingController creates a new BuildingController
func NewBuildingController(buildingService services.BuildingService) *BuildingController {
	return &BuildingController{
		buildingService: buildingService,
	}
}

// GetAllBuildings returns every campus building.
func (c *BuildingController) GetAllBuildings(ctx *gin.Context) {
	buildings, err := c.buildingService.GetAllBuildings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Unable to grab building data")
		return
	}

	ctx.JSON(http.StatusOK, dto.BuildingsResponse{
		Status:    http.StatusOK,
		Buildings: buildings,
	})
}
