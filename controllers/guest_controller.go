package controllers

import (
	"log"
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc     *services.GuestService
	FrontDeskSvc *services.FrontDeskService
}

func NewGuestController(guestSvc *services.GuestService, frontDeskSvc *services.FrontDeskService) *GuestController {
	return &GuestController{GuestSvc: guestSvc, FrontDeskSvc: frontDeskSvc}
}

// GET /api/guests?roomId=
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	if roomParam := c.Query("roomId"); roomParam != "" {
		roomID, err := strconv.ParseUint(roomParam, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid roomId parameter")
			return
		}
		guests, err := ctrl.GuestSvc.GetByRoom(uint(roomID))
		if err != nil {
			log.Printf("GetGuests by room error: %v", err)
			utils.RespondServiceError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, guests)
		return
	}

	guests, err := ctrl.GuestSvc.GetAll()
	if err != nil {
		log.Printf("GetGuests error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GET /api/guests/:id
func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	guest, err := ctrl.GuestSvc.GetByID(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

type guestUpdateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber"`
}

// PUT /api/guests/:id
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req guestUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	guest, err := ctrl.GuestSvc.UpdateContact(id, req.Name, req.Email, req.Phone, req.IDNumber)
	if err != nil {
		log.Printf("UpdateGuest error for guest %d: %v", id, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

type checkOutRequest struct {
	AdditionalCharges float64 `json:"additionalCharges"`
}

// POST /api/guests/:id/checkout
func (ctrl *GuestController) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req checkOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	result, err := ctrl.FrontDeskSvc.CheckOut(id, req.AdditionalCharges)
	if err != nil {
		log.Printf("CheckOut error for guest %d: %v", id, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
