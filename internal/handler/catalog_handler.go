package handler

import (
	"net/http"
	"strconv"

	"go-event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("categories", h.CreateCategory)
		router.GET("categories", h.ListCategories)
		router.GET("states", h.ListStates)
		router.GET("states/:id/lgas", h.ListLGAs)
	}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	category, err := h.service.CreateCategory(c, req.Name, req.Description)
	if err != nil {
		handleError(c, err, "CreateCategory")
		return
	}

	respond(c, category, http.StatusCreated)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c)
	if err != nil {
		handleError(c, err, "ListCategories")
		return
	}

	respond(c, categories, http.StatusOK)
}

func (h *CatalogHandler) ListStates(c *gin.Context) {
	states, err := h.service.ListStates(c)
	if err != nil {
		handleError(c, err, "ListStates")
		return
	}

	respond(c, states, http.StatusOK)
}

func (h *CatalogHandler) ListLGAs(c *gin.Context) {
	stateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handleError(c, err, "ListLGAs")
		return
	}

	lgas, err := h.service.ListLGAsByStateID(c, stateID)
	if err != nil {
		handleError(c, err, "ListLGAs")
		return
	}

	respond(c, lgas, http.StatusOK)
}
