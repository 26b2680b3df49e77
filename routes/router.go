// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vedantwankhade123/Roborace/controllers"
	"github.com/vedantwankhade123/Roborace/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	// --- Public pages ---
	r.GET("/", controllers.HomePage)
	r.GET("/rules", controllers.RulesPage)
	r.GET("/register", controllers.RegistrationPage)
	r.GET("/contact", controllers.ContactPage)
	r.GET("/admin", controllers.AdminLoginPage)
	r.GET("/admin/dashboard", controllers.AdminDashboardPage)

	apiV1 := r.Group("/api/v1")
	{
		// Public submission endpoint
		apiV1.POST("/registrations", controllers.SubmitRegistration)

		// Admin auth
		adminAuth := apiV1.Group("/admin")
		{
			adminAuth.POST("/login", controllers.AdminLogin)
			adminAuth.POST("/signup", controllers.AdminSignup)
		}

		// Admin back-office
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			adminRoutes.GET("/registrations", controllers.AdminGetRegistrations)
			adminRoutes.GET("/registrations/stream", controllers.StreamRegistrations)
			adminRoutes.GET("/registrations/export/csv", controllers.ExportRegistrationsCSV)
			adminRoutes.GET("/registrations/export/pdf", controllers.ExportRegistrationsPDF)
			adminRoutes.PUT("/registrations/:id/status", controllers.AdminUpdateRegistrationStatus)
			adminRoutes.DELETE("/registrations/:id", controllers.AdminDeleteRegistration)
			adminRoutes.POST("/secret-codes", controllers.CreateSecretCode)
		}
	}

	return r
}
