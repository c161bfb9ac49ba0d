package jobs

import (
	"context"
	"log/slog"
	"time"

	"cinehub/internal/cache"
	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/repository"
)

// RatingJob recomputes every title's average rating from its current
// reviews on a fixed interval. It is the only writer of the
// average_rating columns; request paths never touch them.
//
// Runs never overlap: a single goroutine drives the ticker, and a run
// that outlasts the interval simply delays the next one.
type RatingJob struct {
	repo     repository.RatingRepository
	titles   *cache.TitleCache
	logger   *slog.Logger
	interval time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewRatingJob(repo repository.RatingRepository, titles *cache.TitleCache, logger *slog.Logger, interval time.Duration) *RatingJob {
	return &RatingJob{
		repo:     repo,
		titles:   titles,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the ticker loop. The first run happens after one full
// interval, not immediately.
func (j *RatingJob) Start() {
	go j.run()
}

// Stop signals the loop to exit and waits for any in-flight run to
// finish.
func (j *RatingJob) Stop() {
	close(j.stop)
	<-j.done
}

func (j *RatingJob) run() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			start := time.Now()
			if err := j.RunOnce(context.Background()); err != nil {
				j.logger.Error("rating aggregation failed, batch rolled back", "error", err)
				continue
			}
			j.logger.Info("rating aggregation finished", "took", time.Since(start))
		}
	}
}

// RunOnce recomputes all averages inside one transaction. Any failure
// aborts the whole batch and leaves every stored average untouched.
func (j *RatingJob) RunOnce(ctx context.Context) error {
	err := j.repo.InTx(ctx, func(tx repository.RatingRepository) error {
		movieIDs, err := tx.ListMovieIDs(ctx)
		if err != nil {
			return err
		}
		for _, id := range movieIDs {
			if err := recompute(ctx, tx, models.MovieRef(id)); err != nil {
				return err
			}
		}

		seriesIDs, err := tx.ListSeriesIDs(ctx)
		if err != nil {
			return err
		}
		for _, id := range seriesIDs {
			if err := recompute(ctx, tx, models.SeriesRef(id)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// cached detail payloads may carry pre-batch averages
	j.titles.Flush(ctx)
	return nil
}

func recompute(ctx context.Context, tx repository.RatingRepository, ref models.TitleRef) error {
	ratings, err := tx.RatingsForTitle(ctx, ref)
	if err != nil {
		return err
	}
	return tx.SetAverageRating(ctx, ref, Mean(ratings))
}

// Mean returns the arithmetic mean of the ratings, or exactly 0 for an
// empty set so titles whose last review was deleted reset cleanly.
func Mean(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
