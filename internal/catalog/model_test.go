package catalog

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lyquocphong/booking-system/internal/timeutil"
)

func TestScheduleFor(t *testing.T) {
	svc := testService()

	entry, ok := svc.ScheduleFor(time.Monday)
	assert.True(t, ok)
	assert.Equal(t, time.Monday, entry.Weekday)
	assert.Equal(t, 9, entry.From.Hour)

	entry, ok = svc.ScheduleFor(time.Tuesday)
	assert.True(t, ok)
	assert.Equal(t, 11, entry.From.Hour)

	_, ok = svc.ScheduleFor(time.Wednesday)
	assert.False(t, ok)
}

func TestScheduleFor_FirstMatchWins(t *testing.T) {
	tod := func(h int) timeutil.TimeOfDay { return timeutil.TimeOfDay{Hour: h} }
	svc := &Service{
		DurationMinutes: 50,
		Schedule: []DaySchedule{
			{Weekday: time.Monday, Enabled: true, From: tod(9), To: tod(17)},
			{Weekday: time.Monday, Enabled: false, From: tod(10), To: tod(12)},
		},
	}

	entry, ok := svc.ScheduleFor(time.Monday)
	assert.True(t, ok)
	assert.True(t, entry.Enabled)
	assert.Equal(t, 9, entry.From.Hour)
}

func TestDuration(t *testing.T) {
	svc := &Service{DurationMinutes: 50}
	assert.Equal(t, 50*time.Minute, svc.Duration())
}

func TestCreateServiceRequest_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, req)
	})

	w := httptest.NewRecorder()
	reqBody := bytes.NewBuffer([]byte(`{}`))
	req, _ := http.NewRequest(http.MethodPost, "/", reqBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name")
	assert.Contains(t, w.Body.String(), "required")
	assert.Contains(t, w.Body.String(), "Schedule")
}

func TestCreateServiceRequest_WeekdayBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, req)
	})

	body := `{
		"name": "body-massage",
		"price_cents": 10000,
		"duration_minutes": 50,
		"schedule": [{"weekday": 7, "enabled": true, "from": "09:00", "to": "17:00"}]
	}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Weekday")
}
