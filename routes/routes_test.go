package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/config"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func named(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, name+":"+c.Param("kind")+c.Param("id")+c.Param("sessionID"))
	}
}

func testBundle() *handlers.HandlerBundle {
	return &handlers.HandlerBundle{
		ListSchedulesHandler: named("list"),
		GetScheduleHandler:   named("schedule"),
		GetCalendarHandler:   named("calendar"),
		StartSessionHandler:  named("start"),
		GetSessionHandler:    named("session"),
		SelectDayHandler:     named("day"),
		SelectSlotHandler:    named("slot"),
		SubmitBookingHandler: named("booking"),
		CancelSessionHandler: named("cancel"),
		HealthHandler:        named("health"),
	}
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, testBundle())

	cases := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/api/offerings/workshops", "list:workshops"},
		{http.MethodGet, "/api/offerings/workshops/wreaths/schedule", "schedule:workshopswreaths"},
		{http.MethodGet, "/api/offerings/cut-flowers/farm/calendar.ics", "calendar:cut-flowersfarm"},
		{http.MethodPost, "/api/offerings/workshops/wreaths/sessions", "start:workshopswreaths"},
		{http.MethodGet, "/api/sessions/s1", "session:s1"},
		{http.MethodPut, "/api/sessions/s1/day", "day:s1"},
		{http.MethodPut, "/api/sessions/s1/slot", "slot:s1"},
		{http.MethodPost, "/api/sessions/s1/booking", "booking:s1"},
		{http.MethodDelete, "/api/sessions/s1", "cancel:s1"},
		{http.MethodGet, "/health", "health:"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestRegisterRoutes_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterMiddleware(r)
	RegisterRoutes(r, testBundle())

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions/s1/day", nil)
	req.Header.Set("Origin", "https://bethanyblooms.co.za")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterMiddleware_RateLimitedResponseCarriesCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 1
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	r := gin.New()
	RegisterMiddleware(r)
	RegisterRoutes(r, testBundle())

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/offerings/workshops", nil)
		req.Header.Set("Origin", "https://bethanyblooms.co.za")
		req.RemoteAddr = "198.51.100.7:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, get().Code)
	w := get()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
