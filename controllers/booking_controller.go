package controllers

import (
	"log"
	"net/http"
	"time"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GET /api/bookings?status=&from=&to=
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	fromParam := c.Query("from")
	toParam := c.Query("to")
	if fromParam != "" || toParam != "" {
		from, err1 := time.Parse("2006-01-02", fromParam)
		to, err2 := time.Parse("2006-01-02", toParam)
		if err1 != nil || err2 != nil {
			utils.JSONError(c, http.StatusBadRequest, "from and to must both be YYYY-MM-DD dates")
			return
		}
		bookings, err := ctrl.BookingSvc.GetByDateRange(from, to)
		if err != nil {
			log.Printf("GetBookings by range error: %v", err)
			utils.RespondServiceError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, bookings)
		return
	}

	bookings, err := ctrl.BookingSvc.GetAll(c.Query("status"))
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.Create(input)
	if err != nil {
		log.Printf("CreateBooking error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// PUT /api/bookings/:id
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.Update(id, input)
	if err != nil {
		log.Printf("UpdateBooking error for booking %d: %v", id, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Delete(id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// POST /api/bookings/:id/confirm
func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Confirm(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// POST /api/bookings/:id/cancel
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Cancel(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
