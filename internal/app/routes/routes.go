package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/umid/rosterhub/internal/app/controllers"
	"github.com/umid/rosterhub/internal/middleware"
)

// SetupRouter configures all application routes. The paths are the
// published contract and are registered without a version prefix.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	rosterController *controllers.RosterController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Public auth routes
	router.POST("/register", authController.Register)
	router.POST("/token", authController.Login)

	// Authenticated routes
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/students", rosterController.GetStudents)
		authenticated.POST("/add_student", rosterController.AddStudent)
		authenticated.DELETE("/delete_student/:id", rosterController.DeleteStudent)
		authenticated.POST("/add_admin", rosterController.AddAdmin)
		authenticated.GET("/teachers", rosterController.GetTeachers)
	}
}
