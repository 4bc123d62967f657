package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	bookings := g.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.POST("", h.Create)
		bookings.PATCH("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)

		bookings.POST("/recurring/plan", h.PlanRecurring)
		bookings.POST("/recurring", h.SubmitRecurring)
	}
}
