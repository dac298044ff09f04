package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"AirwallexPayments/internal/domain/webhook"
	"AirwallexPayments/internal/external/airwallex"
	processing "AirwallexPayments/internal/webhook"

	"github.com/gin-gonic/gin"
)

const (
	HeaderTimestamp = "x-timestamp"
	HeaderSignature = "x-signature"

	maxWebhookBody = 1 << 20
)

type WebhookHandler struct {
	verifier  *airwallex.Verifier
	processor processing.Processor
}

func NewWebhookHandler(verifier *airwallex.Verifier, processor processing.Processor) WebhookHandler {
	return WebhookHandler{verifier: verifier, processor: processor}
}

// Receive answers 2xx only when the event is applied, ignored or queued.
// A 404 or 409 makes the processor redeliver later.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unreadable body"})
		return
	}

	if err := h.verifier.Verify(c.GetHeader(HeaderTimestamp), c.GetHeader(HeaderSignature), body); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	ev, err := webhook.Decode(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.processor.Process(c.Request.Context(), ev, body)
	if err != nil {
		var notFound *webhook.OrderNotFoundError
		switch {
		case errors.As(err, &notFound):
			slog.WarnContext(c.Request.Context(), "Can't find order for payment intent",
				"payment_intent_id", notFound.PaymentIntentID, "event_name", ev.Name)
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, webhook.ErrOutOfOrder):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		case webhook.IsValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		default:
			slog.ErrorContext(c.Request.Context(), "Webhook processing failed", "event_name", ev.Name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		}
		return
	}

	switch {
	case res.Queued:
		c.JSON(http.StatusAccepted, gin.H{"message": "queued"})
	case res.Handled:
		c.JSON(http.StatusOK, gin.H{"message": "applied"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
	}
}
