package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	unitController *controllers.UnitController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		// Public reads
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/units", unitController.GetUnits)
		courses.GET("/:id/units/:unitId", unitController.GetUnitByID)

		// Writes require an admin token when auth is enabled
		coursesProtected := courses.Group("")
		coursesProtected.Use(authMiddleware.AdminRequired())
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.PATCH("/:id", courseController.PatchCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)

			coursesProtected.POST("/:id/units", unitController.AddUnit)
			coursesProtected.PUT("/:id/units/:unitId", unitController.UpdateUnit)
			coursesProtected.PATCH("/:id/units/:unitId", unitController.PatchUnit)
			coursesProtected.DELETE("/:id/units/:unitId", unitController.DeleteUnit)
		}
	}

	// Health check endpoint (public)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	router.NoRoute(middleware.NoRoute())
}
