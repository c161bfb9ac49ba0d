package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"cinehub/internal/http-api/models"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Anything unmapped is
// a 500 with the detail kept out of the response body.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidAssociation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of movie_id or series_id must be set"})
	case errors.Is(err, models.ErrDuplicateAssociation):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists for this user and title"})
	case errors.Is(err, models.ErrDuplicateEpisodeNumber):
		c.JSON(http.StatusConflict, gin.H{"error": "episode number already taken in this season"})
	case errors.Is(err, models.ErrTitleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "referenced title not found"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses the named path parameter as an int64 id; a non-numeric
// value gets a 400 and ok=false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
