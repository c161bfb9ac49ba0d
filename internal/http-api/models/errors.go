package models

import "errors"

// Domain error kinds shared by the repository and service layers. The
// repositories translate store-level constraint violations into the same
// kinds the application-level checks produce, so callers never see raw
// storage errors for invariant failures.
var (
	ErrNotFound               = errors.New("record not found")
	ErrTitleNotFound          = errors.New("referenced title not found")
	ErrInvalidAssociation     = errors.New("exactly one of movie_id or series_id must be set")
	ErrDuplicateAssociation   = errors.New("record already exists for this user and title")
	ErrDuplicateEpisodeNumber = errors.New("episode with this season and episode number already exists")
	ErrForbidden              = errors.New("insufficient permissions")
)
