package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classfinder/internal/app/controllers"
	"classfinder/internal/app/models/dto"
)

// SetupRouter configures all application routes. Every route is a read-only
// GET; data gets into the database through the offline loader, not here.
func SetupRouter(
	router *gin.Engine,
	buildingController *controllers.BuildingController,
	roomController *controllers.RoomController,
	classController *controllers.ClassController,
	pingDB func() error,
) {
	router.GET("/buildings", buildingController.GetAllBuildings)
	router.GET("/rooms", roomController.GetAllRooms)
	router.GET("/classes/:term", classController.GetClassesByTerm)

	router.GET("/health", func(c *gin.Context) {
		if err := pingDB(); err != nil {
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(http.StatusInternalServerError, "Database unreachable"))
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  http.StatusOK,
			Message: "ok",
		})
	})
}
