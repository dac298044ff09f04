package handlers

import (
	"errors"
	"net/http"

	"AirwallexPayments/internal/domain/eventlog"

	"github.com/gin-gonic/gin"
)

type EventLogHandler struct {
	sink eventlog.Sink
}

func NewEventLogHandler(sink eventlog.Sink) EventLogHandler {
	return EventLogHandler{sink: sink}
}

func (h *EventLogHandler) List(c *gin.Context) {
	var query eventlog.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	page, err := h.sink.List(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, eventlog.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}
