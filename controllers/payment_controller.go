package controllers

import (
	"log"
	"net/http"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

// GET /api/transactions
func (ctrl *PaymentController) GetTransactions(c *gin.Context) {
	transactions, err := ctrl.PaymentSvc.GetAll()
	if err != nil {
		log.Printf("GetTransactions error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, transactions)
}

// GET /api/transactions/:id
func (ctrl *PaymentController) GetTransactionByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	transaction, err := ctrl.PaymentSvc.GetByID(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, transaction)
}

// GET /api/payments/unpaid
func (ctrl *PaymentController) GetUnpaidBookings(c *gin.Context) {
	bookings, err := ctrl.PaymentSvc.GetUnpaidBookings()
	if err != nil {
		log.Printf("GetUnpaidBookings error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type paymentRequest struct {
	BookingID     uint    `json:"bookingId" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// POST /api/payments
func (ctrl *PaymentController) ProcessPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	transaction, err := ctrl.PaymentSvc.ProcessPayment(req.BookingID, req.PaymentMethod, req.Amount)
	if err != nil {
		log.Printf("ProcessPayment error for booking %d: %v", req.BookingID, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, transaction)
}

// POST /api/payments/:id/refund
func (ctrl *PaymentController) RefundPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	transaction, err := ctrl.PaymentSvc.RefundPayment(id)
	if err != nil {
		log.Printf("RefundPayment error for transaction %d: %v", id, err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, transaction)
}
