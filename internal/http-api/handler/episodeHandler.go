package handler

import (
	"log/slog"
	"net/http"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type EpisodeHandler struct {
	episodes service.EpisodeService
	logger   *slog.Logger
}

func NewEpisodeHandler(episodes service.EpisodeService, logger *slog.Logger) *EpisodeHandler {
	return &EpisodeHandler{episodes: episodes, logger: logger}
}

// RegisterRoutes mounts episode routes: listing and creation hang off the
// owning series, item operations are top-level.
func (h *EpisodeHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	rg.GET("/series/:id/episodes", h.ListBySeries)
	rg.POST("/series/:id/episodes", authRequired, adminRequired, h.Create)

	episodes := rg.Group("/episodes")
	episodes.GET("/:id", h.Get)
	episodes.PUT("/:id", authRequired, adminRequired, h.Update)
	episodes.DELETE("/:id", authRequired, adminRequired, h.Delete)
}

func (h *EpisodeHandler) ListBySeries(c *gin.Context) {
	seriesID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.episodes.ListBySeries(c.Request.Context(), seriesID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EpisodeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	episode, err := h.episodes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *EpisodeHandler) Create(c *gin.Context) {
	seriesID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EpisodeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	episode, err := h.episodes.Create(c.Request.Context(), seriesID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, episode)
}

func (h *EpisodeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EpisodeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	episode, err := h.episodes.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.episodes.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
