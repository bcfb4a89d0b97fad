package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lyquocphong/booking-system/internal/catalog"
)

type Handler struct {
	service     Service
	catalogRepo catalog.Repository
	dateFormat  string
	loc         *time.Location
}

func NewHandler(service Service, catalogRepo catalog.Repository, dateFormat string, loc *time.Location) *Handler {
	return &Handler{
		service:     service,
		catalogRepo: catalogRepo,
		dateFormat:  dateFormat,
		loc:         loc,
	}
}

type availableSlotsResponse struct {
	Service availableSlotsService     `json:"service"`
	Slots   map[string][]catalog.Slot `json:"slots"`
}

type availableSlotsService struct {
	Name            string `json:"name"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (h *Handler) resolveService(c *gin.Context) (*catalog.Service, bool) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return nil, false
	}

	svc, err := h.catalogRepo.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return nil, false
	}

	return svc, true
}

// AvailableSlots godoc
// @Summary      Available slots
// @Description  Returns free bookable slots per day over an inclusive date range.
// @Tags         bookings
// @Produce      json
// @Param        serviceID  path      int     true  "Service ID"
// @Param        from       query     string  true  "Start date (YYYY-MM-DD)"
// @Param        to         query     string  true  "End date (YYYY-MM-DD)"
// @Success      200        {object}  availableSlotsResponse
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /services/{serviceID}/available-slots [get]
func (h *Handler) AvailableSlots(c *gin.Context) {
	svc, ok := h.resolveService(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), svc, from, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, availableSlotsResponse{
		Service: availableSlotsService{
			Name:            svc.Name,
			PriceCents:      svc.PriceCents,
			DurationMinutes: svc.DurationMinutes,
		},
		Slots: slots,
	})
}

// Reserve godoc
// @Summary      Reserve a slot
// @Description  Creates an unconfirmed booking for the requested date and start time.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        serviceID  path      int             true  "Service ID"
// @Param        request    body      ReserveRequest  true  "Reservation data"
// @Success      201        {object}  BookingResponse
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      409        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /services/{serviceID}/reserve [post]
func (h *Handler) Reserve(c *gin.Context) {
	svc, ok := h.resolveService(c)
	if !ok {
		return
	}

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.Reserve(c.Request.Context(), svc, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate),
			errors.Is(err, ErrInvalidTime),
			errors.Is(err, ErrOutsideSchedule),
			errors.Is(err, ErrPastBooking):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrCannotBook):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, toResponse(booking, h.dateFormat, h.loc))
}

// GetBooking godoc
// @Summary      Get booking
// @Description  Returns one booking by its identifier.
// @Tags         bookings
// @Produce      json
// @Param        identifier  path      string  true  "Booking identifier"
// @Success      200         {object}  BookingResponse
// @Failure      404         {object}  gin.H
// @Router       /bookings/{identifier} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.service.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(booking, h.dateFormat, h.loc))
}

// Confirm godoc
// @Summary      Confirm booking
// @Description  Confirms an unconfirmed booking. The identifier from the
// @Description  reservation email acts as the confirmation capability.
// @Tags         bookings
// @Produce      json
// @Param        identifier  path      string  true  "Booking identifier"
// @Success      200         {object}  BookingResponse
// @Failure      400         {object}  gin.H
// @Router       /bookings/{identifier}/confirm [post]
func (h *Handler) Confirm(c *gin.Context) {
	booking, err := h.service.Confirm(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(booking, h.dateFormat, h.loc))
}

// ListBookings godoc
// @Summary      List bookings
// @Description  Returns every booking, ordered by start time.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingResponse
// @Failure      500  {object}  gin.H
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Cancels a booking and notifies the guest.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        identifier  path      string  true  "Booking identifier"
// @Success      200         {object}  BookingResponse
// @Failure      400         {object}  gin.H
// @Router       /admin/bookings/{identifier}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	booking, err := h.service.Cancel(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking not found or already cancelled"})
		return
	}

	c.JSON(http.StatusOK, toResponse(booking, h.dateFormat, h.loc))
}
