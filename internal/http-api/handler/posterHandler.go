package handler

import (
	"log/slog"
	"net/http"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type PosterHandler struct {
	posters service.PosterService
	logger  *slog.Logger
}

func NewPosterHandler(posters service.PosterService, logger *slog.Logger) *PosterHandler {
	return &PosterHandler{posters: posters, logger: logger}
}

func (h *PosterHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	rg.GET("/movies/:id/posters", h.ListByMovie)
	rg.GET("/series/:id/posters", h.ListBySeries)
	rg.POST("/movies/:id/posters", authRequired, adminRequired, h.CreateForMovie)
	rg.POST("/series/:id/posters", authRequired, adminRequired, h.CreateForSeries)

	posters := rg.Group("/posters")
	posters.GET("/:id", h.Get)
	posters.POST("", authRequired, adminRequired, h.Create)
	posters.DELETE("/:id", authRequired, adminRequired, h.Delete)
}

func (h *PosterHandler) ListByMovie(c *gin.Context) {
	movieID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.posters.ListByTitle(c.Request.Context(), &movieID, nil)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PosterHandler) ListBySeries(c *gin.Context) {
	seriesID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.posters.ListByTitle(c.Request.Context(), nil, &seriesID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PosterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	poster, err := h.posters.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, poster)
}

func (h *PosterHandler) Create(c *gin.Context) {
	var req dto.PosterCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	poster, err := h.posters.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, poster)
}

// CreateForMovie attaches a poster to the movie in the path; any title ids
// in the body are ignored.
func (h *PosterHandler) CreateForMovie(c *gin.Context) {
	movieID, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.createForTitle(c, &movieID, nil)
}

func (h *PosterHandler) CreateForSeries(c *gin.Context) {
	seriesID, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.createForTitle(c, nil, &seriesID)
}

func (h *PosterHandler) createForTitle(c *gin.Context, movieID, seriesID *int64) {
	var req dto.PosterCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.MovieID = movieID
	req.SeriesID = seriesID

	poster, err := h.posters.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, poster)
}

func (h *PosterHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.posters.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
