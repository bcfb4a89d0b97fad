package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyquocphong/booking-system/internal/timeutil"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type serviceResponse struct {
	ID              int                     `json:"id"`
	Name            string                  `json:"name"`
	PriceCents      int64                   `json:"price_cents"`
	DurationMinutes int                     `json:"duration_minutes"`
	Schedule        []scheduleEntryResponse `json:"schedule"`
}

type scheduleEntryResponse struct {
	Weekday int    `json:"weekday"`
	Enabled bool   `json:"enabled"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func toServiceResponse(svc *Service) serviceResponse {
	resp := serviceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		PriceCents:      svc.PriceCents,
		DurationMinutes: svc.DurationMinutes,
		Schedule:        make([]scheduleEntryResponse, 0, len(svc.Schedule)),
	}
	for _, entry := range svc.Schedule {
		resp.Schedule = append(resp.Schedule, scheduleEntryResponse{
			Weekday: int(entry.Weekday),
			Enabled: entry.Enabled,
			From:    entry.From.String(),
			To:      entry.To.String(),
		})
	}
	return resp
}

// ListServices godoc
// @Summary      List services
// @Description  Returns every bookable service with its weekly schedule.
// @Tags         services
// @Produce      json
// @Success      200  {array}   serviceResponse
// @Failure      500  {object}  gin.H
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.repo.GetAllServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	resp := make([]serviceResponse, 0, len(services))
	for i := range services {
		resp = append(resp, toServiceResponse(&services[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// CreateService godoc
// @Summary      Create service
// @Description  Creates a service definition with its weekly schedule.
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateServiceRequest  true  "Service definition"
// @Success      201      {object}  serviceResponse
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, entry := range req.Schedule {
		if !timeutil.IsValidTimeOfDay(entry.From) || !timeutil.IsValidTimeOfDay(entry.To) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule times must be HH:mm"})
			return
		}
	}

	svc, err := h.repo.CreateService(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, toServiceResponse(svc))
}
