package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"miohost/handlers"
	"miohost/middleware"
)

// RegisterChatRoutes registers the guest dialogue endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", hb.Chat.CreateSession)
		api.GET("/session/:sessionID", hb.Chat.GetSession)
		api.DELETE("/session/:sessionID", hb.Chat.DeleteSession)

		api.POST("/session/:sessionID/message", hb.Chat.PostMessage)
		api.POST("/session/:sessionID/intent", hb.Chat.PostIntent)
		api.POST("/session/:sessionID/option", hb.Chat.PostOption)
		api.POST("/session/:sessionID/back", hb.Chat.PostBack)
		api.POST("/session/:sessionID/service", hb.Chat.PostService)
		api.POST("/session/:sessionID/reception", hb.Chat.PostReception)
		api.DELETE("/session/:sessionID/reception", hb.Chat.DeleteReception)
		api.POST("/session/:sessionID/reset", hb.Chat.PostReset)
		api.PUT("/session/:sessionID/locale", hb.Chat.PutLocale)
	}
}

// RegisterPreferencesRoutes registers the guest settings endpoints.
func RegisterPreferencesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/preferences")
	{
		api.GET("/:guestID", hb.Preferences.GetPreferences)
		api.PUT("/:guestID", hb.Preferences.PutPreferences)
	}
}

// RegisterCatalogRoutes registers the static content endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/chips", hb.Catalog.GetChips)
		api.GET("/places", hb.Catalog.GetPlaces)
		api.GET("/services", hb.Catalog.GetServices)
	}
}

// RegisterDeskRoutes registers the front-desk console endpoints.
func RegisterDeskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/desk")
	{
		api.POST("/login", hb.Desk.Login)

		// Protected routes (require a cached desk session token).
		api.Use(middleware.DeskAuthMiddleware())
		api.GET("/requests", hb.Desk.ListRequests)
		api.GET("/requests/:requestID", hb.Desk.GetRequest)
		api.GET("/messages", hb.Desk.ListMessages)
		api.GET("/feed", hb.Desk.ListFeed)
	}
}

// RegisterHealthRoute registers a basic health check.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterPreferencesRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDeskRoutes(r, hb)
	RegisterHealthRoute(r)
}
