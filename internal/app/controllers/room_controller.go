package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classfinder/internal/app/models/dto"
	"classfinder/internal/app/services"
	"classfinder/internal/middleware"
)

// RoomController handles room-related requests
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// GetAllRooms returns every room joined with its building.
func (c *RoomController) GetAllRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetAllRooms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Unable to grab room data")
		return
	}

	ctx.JSON(http.StatusOK, dto.RoomsResponse{
		Status: http.StatusOK,
		Rooms:  rooms,
	})
}
