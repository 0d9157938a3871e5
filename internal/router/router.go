package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kalobot/backend/internal/api"
	"github.com/kalobot/backend/internal/middleware"
)

// SetupRouter configures the application routes. limiter may be nil when no
// Redis is configured; write routes then run unthrottled.
func SetupRouter(
	profileHandler *api.ProfileHandler,
	historyHandler *api.HistoryHandler,
	jwtSecret string,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(jwtSecret))

	users := v1.Group("/users/:user_id")
	{
		users.GET("/profile", profileHandler.GetProfile)
		users.GET("/intake", historyHandler.ListEvents)
		users.GET("/intake/total", historyHandler.SumCalories)
		users.GET("/intake/today", historyHandler.SumCaloriesToday)

		writes := users.Group("")
		if limiter != nil {
			writes.Use(limiter.Middleware())
		}
		writes.PUT("/profile", profileHandler.UpsertProfile)
		writes.POST("/intake", historyHandler.AppendEvent)
	}

	return router
}
