package controllers

import (
	"log"
	"net/http"
	"strconv"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc      *services.RoomService
	FrontDeskSvc *services.FrontDeskService
}

func NewRoomController(roomSvc *services.RoomService, frontDeskSvc *services.FrontDeskService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, FrontDeskSvc: frontDeskSvc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// GET /api/rooms?status=
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll(c.Query("status"))
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		log.Printf("CreateRoom error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GET /api/rooms/:id
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// PATCH /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Update(id, updates)
	if err != nil {
		log.Printf("UpdateRoom error for room %d: %v", id, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DELETE /api/rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GET /api/rooms/:id/beds
func (ctrl *RoomController) GetAvailableBeds(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	beds, err := ctrl.RoomSvc.AvailableBeds(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, beds)
}

// POST /api/rooms/:id/checkin
func (ctrl *RoomController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	guest, err := ctrl.FrontDeskSvc.CheckIn(id, input)
	if err != nil {
		log.Printf("CheckIn error for room %d: %v", id, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

type statusChangeRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// POST /api/rooms/:id/status
func (ctrl *RoomController) SetRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	result, err := ctrl.FrontDeskSvc.SetRoomStatus(id, req.Status, req.Reason)
	if err != nil {
		log.Printf("SetRoomStatus error for room %d: %v", id, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
