package api

import (
	"net/http"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	clientService service.ClientService,
	assessmentService service.AssessmentService,
) {
	authHandler := NewAuthHandler(authService)
	clientHandler := NewClientHandler(clientService)
	assessmentHandler := NewAssessmentHandler(assessmentService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware, RoleMiddleware(domain.RoleTrainer))
	{
		// --- Client Routes ---
		clientGroup := protected.Group("/clients")
		{
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("", clientHandler.GetClients)
			clientGroup.GET("/:clientId", clientHandler.GetClient)
			clientGroup.PUT("/:clientId", clientHandler.UpdateClient)
			clientGroup.DELETE("/:clientId", clientHandler.DeleteClient)

			// Sessions nested under the client they belong to
			clientGroup.POST("/:clientId/assessments", assessmentHandler.CreateAssessment)
			clientGroup.GET("/:clientId/assessments", assessmentHandler.GetAssessmentHistory)
			clientGroup.GET("/:clientId/comparison", assessmentHandler.GetComparison)
		}

		// --- Assessment Routes ---
		assessmentGroup := protected.Group("/assessments")
		{
			assessmentGroup.GET("/:assessmentId", assessmentHandler.GetAssessment)
			assessmentGroup.DELETE("/:assessmentId", assessmentHandler.DeleteAssessment)
			assessmentGroup.GET("/:assessmentId/metrics", assessmentHandler.GetMetrics)
			assessmentGroup.GET("/:assessmentId/symmetry", assessmentHandler.GetSymmetry)

			// Progress photo upload flow
			assessmentGroup.POST("/:assessmentId/photo/upload-url", assessmentHandler.RequestPhotoUpload)
			assessmentGroup.POST("/:assessmentId/photo/confirm", assessmentHandler.ConfirmPhotoUpload)
			assessmentGroup.GET("/:assessmentId/photo/download-url", assessmentHandler.GetPhotoDownloadURL)
		}
	}
}
