package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classfinder/internal/app/models"
	"classfinder/internal/app/models/dto"
	"classfinder/internal/app/services"
	"classfinder/internal/middleware"
)

// ClassController handles class-schedule requests
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// GetClassesByTerm returns the class schedule for one term. The term path
// parameter is validated against the allow-list by the service; unknown
// terms come back as 400 without touching the database.
func (c *ClassController) GetClassesByTerm(ctx *gin.Context) {
	term := models.Term(ctx.Param("term"))

	classes, err := c.classService.GetClassesByTerm(ctx.Request.Context(), term)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Unable to grab class data")
		return
	}

	ctx.JSON(http.StatusOK, dto.ClassesResponse{
		Status:  http.StatusOK,
		Classes: classes,
	})
}
