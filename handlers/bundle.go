package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Schedule endpoints
	ListSchedulesHandler gin.HandlerFunc
	GetScheduleHandler   gin.HandlerFunc
	GetCalendarHandler   gin.HandlerFunc

	// Selection session endpoints
	StartSessionHandler  gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	SelectDayHandler     gin.HandlerFunc
	SelectSlotHandler    gin.HandlerFunc
	SubmitBookingHandler gin.HandlerFunc
	CancelSessionHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires a ScheduleHandler into a bundle.
func NewHandlerBundle(h *ScheduleHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		ListSchedulesHandler: h.ListSchedulesHandler,
		GetScheduleHandler:   h.GetScheduleHandler,
		GetCalendarHandler:   h.GetCalendarHandler,
		StartSessionHandler:  h.StartSessionHandler,
		GetSessionHandler:    h.GetSessionHandler,
		SelectDayHandler:     h.SelectDayHandler,
		SelectSlotHandler:    h.SelectSlotHandler,
		SubmitBookingHandler: h.SubmitBookingHandler,
		CancelSessionHandler: h.CancelSessionHandler,
		HealthHandler:        health,
	}
}
