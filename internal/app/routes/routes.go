package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edunova/backend/internal/app/controllers"
	"github.com/edunova/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	teacherController *controllers.TeacherController,
	timetableController *controllers.TimetableController,
	feedbackController *controllers.FeedbackController,
	linkController *controllers.RegistrationLinkController,
	resourceController *controllers.CourseResourceController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.RegisterAdmin)
	}

	v1.GET("/timetable", timetableController.GetTimetable)
	v1.GET("/registration-link", linkController.GetPublicLink)
	v1.GET("/course-resources/:subject/:grade", resourceController.ResolveResource)

	feedback := v1.Group("/feedback")
	{
		feedback.POST("", feedbackController.SubmitFeedback)
		feedback.GET("/public", feedbackController.ListPublicFeedback)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.GET("/settings", settingsController.GetSettings)

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.GET("/:id", studentController.GetStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.ListTeachers)
			teachers.POST("", teacherController.CreateTeacher)
			teachers.GET("/:id", teacherController.GetTeacher)
			teachers.PUT("/:id", teacherController.UpdateTeacher)
			teachers.DELETE("/:id", teacherController.DeleteTeacher)
		}

		timetable := authenticated.Group("/timetable")
		{
			timetable.POST("", timetableController.CreateEntry)
			timetable.PUT("/:id", timetableController.UpdateEntry)
			timetable.DELETE("/:id", timetableController.DeleteEntry)
		}

		feedbackAdmin := authenticated.Group("/feedback")
		{
			feedbackAdmin.GET("", feedbackController.ListFeedback)
			feedbackAdmin.GET("/stats", feedbackController.GetFeedbackStats)
			feedbackAdmin.PUT("/:id/status", feedbackController.UpdateFeedbackStatus)
			feedbackAdmin.DELETE("/:id", feedbackController.DeleteFeedback)
		}

		resources := authenticated.Group("/course-resources")
		{
			resources.GET("", resourceController.ListResources)
			resources.PUT("", resourceController.UpsertResource)
			resources.DELETE("/:id", resourceController.DeleteResource)
		}

		admin := authenticated.Group("/admin")
		{
			admin.GET("/registration-link", linkController.GetActiveLink)
			admin.PUT("/registration-link", linkController.SetLink)
			admin.DELETE("/registration-link", linkController.DisableLink)
			admin.PUT("/settings", settingsController.UpdateSettings)
		}

		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardController.GetStats)
			dashboard.GET("/activity", dashboardController.GetActivity)
		}
	}
}
