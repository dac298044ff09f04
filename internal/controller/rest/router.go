package rest

import (
	"AirwallexPayments/internal/controller/rest/handlers"
	"AirwallexPayments/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Router struct {
	webhook       handlers.WebhookHandler
	methods       handlers.PaymentMethodsHandler
	paymentIntent handlers.PaymentIntentHandler
	order         handlers.OrderHandler
	events        handlers.EventLogHandler
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.POST("/webhooks/airwallex", r.webhook.Receive)
	engine.GET("/webhooks/events", r.events.List)

	engine.GET("/payment-methods", r.methods.List)
	engine.GET("/payment-methods/:code/availability", r.methods.Availability)
	engine.DELETE("/payment-methods/cache", r.methods.CleanCache)

	engine.POST("/payment-intents", r.paymentIntent.Register)
	engine.GET("/payment-intents/:intent_id", r.paymentIntent.Get)

	engine.GET("/orders/:order_id", r.order.Get)
}

func NewRouter(
	webhook handlers.WebhookHandler,
	methods handlers.PaymentMethodsHandler,
	paymentIntent handlers.PaymentIntentHandler,
	order handlers.OrderHandler,
	events handlers.EventLogHandler,
) *Router {
	return &Router{
		webhook:       webhook,
		methods:       methods,
		paymentIntent: paymentIntent,
		order:         order,
		events:        events,
	}
}
