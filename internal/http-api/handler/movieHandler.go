package handler

import (
	"log/slog"
	"net/http"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movies service.MovieService
	logger *slog.Logger
}

func NewMovieHandler(movies service.MovieService, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{movies: movies, logger: logger}
}

// RegisterRoutes mounts the movie CRUD. Reads are public, writes are
// admin-only.
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	movies := rg.Group("/movies")
	movies.GET("", h.List)
	movies.GET("/:id", h.Get)
	movies.POST("", authRequired, adminRequired, h.Create)
	movies.PUT("/:id", authRequired, adminRequired, h.Update)
	movies.DELETE("/:id", authRequired, adminRequired, h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	list, err := h.movies.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	movie, err := h.movies.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.MovieCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	movie, err := h.movies.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MovieUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	movie, err := h.movies.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.movies.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
