package handler

import (
	"log/slog"
	"net/http"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(reviews service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger}
}

// RegisterRoutes mounts review routes: per-title listing is public, item
// writes need authentication and pass through the owner-or-admin check in
// the service.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("/movies/:id/reviews", h.ListByMovie)
	rg.GET("/series/:id/reviews", h.ListBySeries)

	reviews := rg.Group("/reviews")
	reviews.GET("/:id", h.Get)
	reviews.POST("", authRequired, h.Create)
	reviews.PUT("/:id", authRequired, h.Update)
	reviews.DELETE("/:id", authRequired, h.Delete)
}

func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	movieID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.reviews.ListByTitle(c.Request.Context(), &movieID, nil)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) ListBySeries(c *gin.Context) {
	seriesID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.reviews.ListByTitle(c.Request.Context(), nil, &seriesID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.reviews.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.reviews.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.reviews.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reviews.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
