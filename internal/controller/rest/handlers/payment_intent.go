package handlers

import (
	"errors"
	"net/http"

	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/internal/domain/paymentintent"

	"github.com/gin-gonic/gin"
)

type PaymentIntentHandler struct {
	service *paymentintent.Service
}

func NewPaymentIntentHandler(s *paymentintent.Service) PaymentIntentHandler {
	return PaymentIntentHandler{service: s}
}

func (h *PaymentIntentHandler) Register(c *gin.Context) {
	var req paymentintent.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	intent, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, paymentintent.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, paymentintent.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, intent)
}

func (h *PaymentIntentHandler) Get(c *gin.Context) {
	intent, err := h.service.Get(c.Request.Context(), c.Param("intent_id"))
	if err != nil {
		if errors.Is(err, paymentintent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, intent)
}
