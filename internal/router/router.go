package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stejus2010/stai-25/internal/auth"
	"github.com/stejus2010/stai-25/internal/chat"
	"github.com/stejus2010/stai-25/internal/history"
	"github.com/stejus2010/stai-25/internal/middleware"
	"github.com/stejus2010/stai-25/internal/profile"
	"github.com/stejus2010/stai-25/internal/scan"
)

// Deps are the wired handlers main assembles. Tests build the same router
// with in-memory wiring.
type Deps struct {
	Auth    *auth.Handler
	Profile *profile.Handler
	Scan    *scan.Handler
	History *history.Handler
	Chat    *chat.Handler
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
	}

	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware())
	{
		profileGroup.GET("", deps.Profile.Get)
		profileGroup.PUT("", deps.Profile.Update)
		profileGroup.PUT("/allergies", deps.Profile.ReplaceAllergies)
	}

	// Scanning and history admit guests: without a token they run against the
	// process-local fallback instead of the account store.
	scanGroup := r.Group("/scan")
	scanGroup.Use(middleware.OptionalAuth())
	{
		scanGroup.POST("", deps.Scan.Scan)
		scanGroup.POST("/reanalyze", deps.Scan.Reanalyze)
	}

	historyGroup := r.Group("/history")
	historyGroup.Use(middleware.OptionalAuth())
	{
		historyGroup.GET("", deps.History.List)
		historyGroup.DELETE("", deps.History.Clear)
	}

	r.POST("/chat", deps.Chat.Ask)

	return r
}
