package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/placementhub/internal/app/controllers"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	internshipController *controllers.InternshipController,
	applicationController *controllers.ApplicationController,
	analyticsController *controllers.AnalyticsController,
	certificateController *controllers.CertificateController,
	feedbackController *controllers.FeedbackController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Certificate verification is public so employers can check authenticity
	v1.GET("/certificates/verify/:code", certificateController.Verify)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	students := authenticated.Group("/students")
	students.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		students.GET("/profile", studentController.GetProfile)
		students.PUT("/profile", studentController.UpdateProfile)
		students.POST("/resume", studentController.UploadResume)
	}

	internships := authenticated.Group("/internships")
	{
		internships.GET("", internshipController.List)
		internships.GET("/recommended",
			authMiddleware.RoleRequired(models.RoleStudent),
			internshipController.Recommended)
		internships.GET("/:id", internshipController.GetByID)

		posting := internships.Group("")
		posting.Use(authMiddleware.RoleRequired(models.RolePlacementCell, models.RoleEmployer))
		{
			posting.POST("", internshipController.Create)
			posting.PUT("/:id", internshipController.Update)
			posting.DELETE("/:id", internshipController.Delete)
		}
	}

	applications := authenticated.Group("/applications")
	{
		applications.POST("",
			authMiddleware.RoleRequired(models.RoleStudent),
			applicationController.Create)
		applications.GET("/me",
			authMiddleware.RoleRequired(models.RoleStudent),
			applicationController.ListMine)
		applications.GET("",
			authMiddleware.RoleRequired(models.RoleMentor, models.RolePlacementCell, models.RoleEmployer),
			applicationController.List)
		applications.GET("/:id", applicationController.GetByID)
		applications.PUT("/:id/mentor-action",
			authMiddleware.RoleRequired(models.RoleMentor),
			applicationController.MentorAction)
		applications.PUT("/:id/status",
			authMiddleware.RoleRequired(models.RolePlacementCell, models.RoleEmployer),
			applicationController.UpdateStatus)
		applications.DELETE("/:id",
			authMiddleware.RoleRequired(models.RolePlacementCell),
			applicationController.Delete)

		applications.POST("/:id/certificate",
			authMiddleware.RoleRequired(models.RolePlacementCell),
			certificateController.Issue)
		applications.GET("/:id/feedback",
			authMiddleware.RoleRequired(models.RoleMentor, models.RolePlacementCell, models.RoleEmployer),
			feedbackController.GetByApplication)
	}

	certificates := authenticated.Group("/certificates")
	{
		certificates.GET("/me",
			authMiddleware.RoleRequired(models.RoleStudent),
			certificateController.ListMine)
	}

	feedback := authenticated.Group("/feedback")
	feedback.Use(authMiddleware.RoleRequired(models.RoleEmployer, models.RolePlacementCell))
	{
		feedback.POST("", feedbackController.Submit)
	}

	analytics := authenticated.Group("/analytics")
	analytics.Use(authMiddleware.RoleRequired(models.RolePlacementCell))
	{
		analytics.GET("/dashboard", analyticsController.Dashboard)
		analytics.GET("/interviews", analyticsController.WeeklyInterviews)
	}
}
