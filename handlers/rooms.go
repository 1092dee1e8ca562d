package handlers

import (
	"net/http"

	roomRepo "studyrooms/database/repository/room"
	"studyrooms/models"
	"studyrooms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves the scraped room availability collection.
type RoomHandler struct {
	Repo   roomRepo.RoomRepository
	Logger *zap.Logger
}

func NewRoomHandler(repo roomRepo.RoomRepository, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Repo: repo, Logger: logger}
}

// ListRoomsHandler returns every room with its availability blocks as
// a JSON array.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to retrieve rooms", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get rooms", err.Error())
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}
