package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/loketh/ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Event store (public read access)
		v1.GET("/events/total", handler.TotalEvents)
		v1.GET("/events/:id", handler.GetEvent)

		// Settlement (caller from the bearer token)
		v1.POST("/events", middleware.Auth(auth), handler.CreateEvent)
		v1.POST("/events/:id/tickets", middleware.Auth(auth), handler.BuyTicket)
		v1.POST("/events/:id/withdrawals", middleware.Auth(auth), handler.WithdrawMoney)

		// Ownership index (public read access)
		v1.GET("/accounts/:address/events", handler.GetAccountEvents)
		v1.GET("/accounts/:address/events/:id", handler.OrganizerOwns)
		v1.GET("/accounts/:address/tickets", handler.GetAccountTickets)
		v1.GET("/accounts/:address/tickets/:id", handler.HasTicket)

		// Token registry
		v1.GET("/tokens", handler.ListTokens)
		v1.GET("/tokens/:name", handler.ResolveToken)
		v1.POST("/tokens", middleware.Auth(auth), handler.RegisterToken)
	}
}
