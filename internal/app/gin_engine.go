package app

import (
	"AirwallexPayments/pkg/logger"
	"AirwallexPayments/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Probe and scrape traffic stays out of request metrics and body logs.
var quietRoutes = []string{"/metrics", "/health/live", "/health/ready"}

func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(quietRoutes...),
		logger.BodyLogger(quietRoutes...),
		gin.Recovery(),
	)
	return engine
}
