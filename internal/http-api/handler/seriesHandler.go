package handler

import (
	"log/slog"
	"net/http"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type SeriesHandler struct {
	series service.SeriesService
	logger *slog.Logger
}

func NewSeriesHandler(series service.SeriesService, logger *slog.Logger) *SeriesHandler {
	return &SeriesHandler{series: series, logger: logger}
}

func (h *SeriesHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	series := rg.Group("/series")
	series.GET("", h.List)
	series.GET("/:id", h.Get)
	series.POST("", authRequired, adminRequired, h.Create)
	series.PUT("/:id", authRequired, adminRequired, h.Update)
	series.DELETE("/:id", authRequired, adminRequired, h.Delete)
}

func (h *SeriesHandler) List(c *gin.Context) {
	list, err := h.series.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SeriesHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	series, err := h.series.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) Create(c *gin.Context) {
	var req dto.SeriesCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	series, err := h.series.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, series)
}

func (h *SeriesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SeriesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	series, err := h.series.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.series.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
