package routes

import (
	"net/http"

	"studyrooms/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers the room availability endpoints.
func RegisterRoomRoutes(r *gin.Engine, rh *handlers.RoomHandler) {
	r.GET("/", rh.ListRoomsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires up all endpoints.
func RegisterRoutes(r *gin.Engine, rh *handlers.RoomHandler) {
	RegisterHealthRoute(r)
	RegisterRoomRoutes(r, rh)
}
