package handler

import (
	"net/http"
	"strconv"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("users/:id", h.GetUser)
		router.GET("users/:id/profile", h.GetProfile)
		router.PATCH("users/:id/profile", h.UpdateProfile)
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetUser")
		return
	}

	user, err := h.service.GetUserByID(c, id)
	if err != nil {
		handleError(c, err, "GetUser")
		return
	}

	respond(c, user, http.StatusOK)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "GetProfile")
		return
	}

	profile, err := h.service.GetProfile(c, userID)
	if err != nil {
		handleError(c, err, "GetProfile")
		return
	}

	respond(c, profile, http.StatusOK)
}

type updateProfileRequest struct {
	Phone   *string `json:"phone"`
	Gender  *string `json:"gender"`
	Address *string `json:"address"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "UpdateProfile")
		return
	}

	var req updateProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	profile, err := h.service.UpdateProfile(c, userID, model.UpdateProfileParams{
		Phone:   req.Phone,
		Gender:  req.Gender,
		Address: req.Address,
	})
	if err != nil {
		handleError(c, err, "UpdateProfile")
		return
	}

	respond(c, profile, http.StatusOK)
}
