package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/controllers"
	"github.com/sarthak-bhuptani/MindCare/middleware"
	"github.com/sarthak-bhuptani/MindCare/repositories"
	"github.com/sarthak-bhuptani/MindCare/services"
)

func RegisterRoutes(r *gin.Engine, groq *services.GroqClient) {
	planRepo := repositories.NewGormPlanRepository(config.DB)
	streakRepo := repositories.NewGormStreakRepository(config.DB)
	profileRepo := repositories.NewGormProfileRepository(config.DB)
	sessionStore := repositories.NewRedisSessionStore(config.RedisClient)
	themeStore := repositories.NewRedisThemeStore(config.RedisClient)

	sentimentService := services.NewSentimentService(groq)
	chatService := services.NewChatService(groq)
	dashboardService := services.NewDashboardService(planRepo, streakRepo, profileRepo, sessionStore, themeStore)

	authController := controllers.AuthController{}
	userController := controllers.UserController{}
	journalController := controllers.NewJournalController(sentimentService, themeStore)
	dashboardController := controllers.NewDashboardController(dashboardService)
	planController := controllers.NewPlanController(dashboardService)
	checkinController := controllers.NewCheckInController(sessionStore, themeStore)
	profileController := controllers.NewProfileController(profileRepo)
	chatController := controllers.NewChatController(chatService)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.GET("/health", healthCheck)
	}

	// Authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/journal", journalController.List)
		private.POST("/journal", journalController.Create)
		private.PUT("/journal/:id", journalController.Update)
		private.DELETE("/journal/:id", journalController.Delete)

		private.POST("/checkin", checkinController.Create)
		private.GET("/dashboard", dashboardController.Get)
		private.PUT("/plan", planController.Update)
		private.POST("/plan/refresh", planController.Refresh)

		private.GET("/profile", profileController.Get)
		private.PUT("/profile", profileController.Update)
		private.GET("/user", userController.GetUser)

		private.POST("/chat", chatController.SendMessage)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

// healthCheck reports database and redis reachability.
func healthCheck(c *gin.Context) {
	dbState := "connected"
	if sqlDB, err := config.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbState = "disconnected"
	}

	redisState := "connected"
	if _, err := config.RedisClient.Ping(c.Request.Context()).Result(); err != nil {
		redisState = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbState,
		"redis":    redisState,
	})
}
