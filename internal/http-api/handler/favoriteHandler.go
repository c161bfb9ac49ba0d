package handler

import (
	"log/slog"
	"net/http"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites service.FavoriteService
	logger    *slog.Logger
}

func NewFavoriteHandler(favorites service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, logger: logger}
}

// RegisterRoutes mounts favorites. Everything is scoped to the caller.
func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	favorites := rg.Group("/favorites", authRequired)
	favorites.GET("", h.List)
	favorites.POST("", h.Create)
	favorites.DELETE("/:id", h.Delete)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	list, err := h.favorites.ListByUser(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FavoriteHandler) Create(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	var req dto.FavoriteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fav, err := h.favorites.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, fav)
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.favorites.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
