package service

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/repository"
)

// titleResolver answers "does this title exist" for either branch of a
// TitleRef. Shared by the services that attach things to titles.
type titleResolver struct {
	movies *repository.MovieRepo
	series *repository.SeriesRepo
}

func (t *titleResolver) ensureExists(ctx context.Context, ref models.TitleRef) error {
	var (
		ok  bool
		err error
	)
	switch ref.Kind {
	case models.TitleMovie:
		ok, err = t.movies.Exists(ctx, ref.ID)
	case models.TitleSeries:
		ok, err = t.series.Exists(ctx, ref.ID)
	default:
		return models.ErrInvalidAssociation
	}
	if err != nil {
		return fmt.Errorf("check title exists: %w", err)
	}
	if !ok {
		return models.ErrTitleNotFound
	}
	return nil
}
