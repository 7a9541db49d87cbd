package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Rooms     *controllers.RoomController
	Assistant *controllers.AssistantController
	Health    *controllers.HealthController
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", controllers.SessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter builds the gin engine for the front desk API.
func SetupRouter(h Handlers, corsOrigins []string, log zerolog.Logger) (*gin.Engine, error) {
	if err := controllers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log), middleware.Metrics())
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.POST("", h.Rooms.CreateRoom)

			// ? must stay before /:id
			rooms.GET("/stats", h.Rooms.GetRoomStats)

			rooms.GET("/:id", h.Rooms.GetRoom)
			rooms.PATCH("/:id", h.Rooms.UpdateRoom)
			rooms.PUT("/:id", h.Rooms.UpdateRoom)

			rooms.POST("/:id/checkin", h.Rooms.CheckIn)
			rooms.GET("/:id/bill", h.Rooms.PreviewBill)
			rooms.POST("/:id/checkout", h.Rooms.CheckOut)

			rooms.GET("/:id/status-impact", h.Rooms.StatusImpact)
			rooms.PUT("/:id/status", h.Rooms.ChangeStatus)
		}

		assistant := api.Group("/assistant")
		{
			assistant.POST("/chat", h.Assistant.Chat)
		}
	}

	return r, nil
}
