package routes

import (
	"net/http"
	"time"

	"tripwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Planner *handlers.PlannerHandler
	Travel  *handlers.TravelHandler
}

// RegisterConversationRoutes registers the chat endpoints.
func RegisterConversationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/conversations")
	{
		api.POST("", hb.Planner.StartConversationHandler)
		api.GET("/:id", hb.Planner.GetConversationHandler)
		api.POST("/:id/messages", hb.Planner.ChatHandler)
	}
}

// RegisterTravelRoutes registers the direct hotel/flight lookup endpoints.
func RegisterTravelRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/travel")
	{
		api.GET("/hotels", hb.Travel.HotelSearchHandler)
		api.GET("/flights", hb.Travel.FlightSearchHandler)
	}
}

// RegisterRoutes wires CORS, health and all endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	RegisterConversationRoutes(r, hb)
	RegisterTravelRoutes(r, hb)
}
