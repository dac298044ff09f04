package handlers

import (
	"net/http"

	"AirwallexPayments/internal/domain/methods"

	"github.com/gin-gonic/gin"
)

type PaymentMethodsHandler struct {
	helper *methods.Helper
}

func NewPaymentMethodsHandler(helper *methods.Helper) PaymentMethodsHandler {
	return PaymentMethodsHandler{helper: helper}
}

type methodsQuery struct {
	Currency string `form:"currency" binding:"omitempty,len=3,alpha"`
}

func (h *PaymentMethodsHandler) List(c *gin.Context) {
	var query methodsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := methods.WithCurrency(c.Request.Context(), query.Currency)
	c.JSON(http.StatusOK, gin.H{"methods": h.helper.AllMethods(ctx)})
}

func (h *PaymentMethodsHandler) Availability(c *gin.Context) {
	var query methodsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	code := c.Param("code")
	ctx := methods.WithCurrency(c.Request.Context(), query.Currency)
	c.JSON(http.StatusOK, gin.H{"code": code, "available": h.helper.IsAvailable(ctx, code)})
}

func (h *PaymentMethodsHandler) CleanCache(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"removed": h.helper.Invalidate()})
}
