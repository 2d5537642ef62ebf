package handler

import (
	"net/http"
	"strconv"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type OrganizerHandler struct {
	service service.OrganizerService
}

func NewOrganizerHandler(service service.OrganizerService) *OrganizerHandler {
	return &OrganizerHandler{service: service}
}

func (h *OrganizerHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("organizers", h.RegisterOrganizer)
		router.GET("organizers/:id", h.GetOrganizer)
		router.PATCH("organizers/:id", h.UpdateOrganizer)
		router.GET("organizers/:id/dashboard", h.Dashboard)
	}
}

func (h *OrganizerHandler) RegisterOrganizer(c *gin.Context) {
	var req model.CreateOrganizerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	organizer, err := h.service.RegisterOrganizer(c, req)
	if err != nil {
		handleError(c, err, "RegisterOrganizer")
		return
	}

	respond(c, organizer, http.StatusCreated)
}

func (h *OrganizerHandler) GetOrganizer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetOrganizer")
		return
	}

	organizer, err := h.service.GetOrganizerByID(c, id)
	if err != nil {
		handleError(c, err, "GetOrganizer")
		return
	}

	respond(c, organizer, http.StatusOK)
}

type updateOrganizerRequest struct {
	OrganizationName *string `json:"organization_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Bio              *string `json:"bio"`
}

func (h *OrganizerHandler) UpdateOrganizer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "UpdateOrganizer")
		return
	}

	var req updateOrganizerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	organizer, err := h.service.UpdateOrganizer(c, id, model.UpdateOrganizerParams{
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		Phone:            req.Phone,
		Bio:              req.Bio,
	})
	if err != nil {
		handleError(c, err, "UpdateOrganizer")
		return
	}

	respond(c, organizer, http.StatusOK)
}

func (h *OrganizerHandler) Dashboard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "Dashboard")
		return
	}

	stats, err := h.service.Dashboard(c, id)
	if err != nil {
		handleError(c, err, "Dashboard")
		return
	}

	respond(c, stats, http.StatusOK)
}
