package handlers

import (
	"errors"
	"net/http"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/booking"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/scheduling"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the storefront's schedule and booking endpoints.
type ScheduleHandler struct {
	BookingSvc booking.BookingService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc booking.BookingService) *ScheduleHandler {
	return &ScheduleHandler{BookingSvc: svc}
}

// ListSchedulesHandler handles GET /api/offerings/:kind.
func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	summaries, err := h.BookingSvc.ListSchedules(c.Request.Context(), kind)
	if err != nil {
		respondError(c, "ListSchedules", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offerings": summaries})
}

// GetScheduleHandler handles GET /api/offerings/:kind/:id/schedule.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	view, err := h.BookingSvc.GetSchedule(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		respondError(c, "GetSchedule", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetCalendarHandler handles GET /api/offerings/:kind/:id/calendar.ics.
func (h *ScheduleHandler) GetCalendarHandler(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id := c.Param("id")
	feed, err := h.BookingSvc.GetCalendar(c.Request.Context(), kind, id)
	if err != nil {
		respondError(c, "GetCalendar", err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+id+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// StartSessionHandler handles POST /api/offerings/:kind/:id/sessions.
func (h *ScheduleHandler) StartSessionHandler(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	view, err := h.BookingSvc.StartSession(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		respondError(c, "StartSession", err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSessionHandler handles GET /api/sessions/:sessionID.
func (h *ScheduleHandler) GetSessionHandler(c *gin.Context) {
	view, err := h.BookingSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectDayHandler handles PUT /api/sessions/:sessionID/day.
func (h *ScheduleHandler) SelectDayHandler(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.BookingSvc.SelectDay(c.Request.Context(), c.Param("sessionID"), body.Date)
	if err != nil {
		respondError(c, "SelectDay", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectSlotHandler handles PUT /api/sessions/:sessionID/slot.
func (h *ScheduleHandler) SelectSlotHandler(c *gin.Context) {
	var body struct {
		OccurrenceID string `json:"occurrenceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.BookingSvc.SelectSlot(c.Request.Context(), c.Param("sessionID"), body.OccurrenceID)
	if err != nil {
		respondError(c, "SelectSlot", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitBookingHandler handles POST /api/sessions/:sessionID/booking.
func (h *ScheduleHandler) SubmitBookingHandler(c *gin.Context) {
	var body struct {
		Quantity *int                  `json:"quantity"`
		Customer models.BookingContact `json:"customer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	sessionID := c.Param("sessionID")
	req, err := h.BookingSvc.SubmitBooking(c.Request.Context(), sessionID, quantity, body.Customer)
	if err != nil {
		respondError(c, "SubmitBooking", err)
		return
	}
	getLogger(c).Info("booking submitted", zap.String("sessionID", sessionID), zap.String("bookingID", req.ID))
	c.JSON(http.StatusAccepted, gin.H{"booking": req})
}

// CancelSessionHandler handles DELETE /api/sessions/:sessionID.
func (h *ScheduleHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.BookingSvc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, "CancelSession", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseKind(c *gin.Context) (models.OfferingKind, bool) {
	kind, ok := models.ParseOfferingKind(c.Param("kind"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown offering type", "expected workshops or cut-flowers")
	}
	return kind, ok
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, op string, err error) {
	var bookingErr *scheduling.BookingError
	switch {
	case errors.As(err, &bookingErr):
		utils.JSONCodeError(c, http.StatusUnprocessableEntity, bookingErr.Code, bookingErr.Message, "")
	case errors.Is(err, booking.ErrOfferingNotFound):
		utils.JSONCodeError(c, http.StatusNotFound, "offeringNotFound", "offering not found", err.Error())
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONCodeError(c, http.StatusNotFound, "sessionNotFound", "selection session not found or expired", "")
	case errors.Is(err, scheduling.ErrUnknownDay):
		utils.JSONCodeError(c, http.StatusNotFound, "unknownDay", "no sessions on that day", err.Error())
	case errors.Is(err, scheduling.ErrNoDaySelected), errors.Is(err, scheduling.ErrSlotNotInDay):
		utils.JSONCodeError(c, http.StatusConflict, "selectionConflict", "session does not match the selected day", err.Error())
	default:
		getLogger(c).Error(op+": request failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "internal error",
			"message": "please try again later",
		})
	}
}
