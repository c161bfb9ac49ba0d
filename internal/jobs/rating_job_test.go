package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
)

// fakeRatingRepo is an in-memory RatingRepository. InTx stages average
// writes and commits them only when the batch function succeeds, matching
// the all-or-nothing behavior of the real transaction.
type fakeRatingRepo struct {
	movieRatings  map[int64][]int
	seriesRatings map[int64][]int
	movieAvg      map[int64]float64
	seriesAvg     map[int64]float64

	failRef *models.TitleRef
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{
		movieRatings:  make(map[int64][]int),
		seriesRatings: make(map[int64][]int),
		movieAvg:      make(map[int64]float64),
		seriesAvg:     make(map[int64]float64),
	}
}

func (f *fakeRatingRepo) InTx(ctx context.Context, fn func(tx repository.RatingRepository) error) error {
	tx := &fakeRatingRepo{
		movieRatings:  f.movieRatings,
		seriesRatings: f.seriesRatings,
		movieAvg:      make(map[int64]float64, len(f.movieAvg)),
		seriesAvg:     make(map[int64]float64, len(f.seriesAvg)),
		failRef:       f.failRef,
	}
	for k, v := range f.movieAvg {
		tx.movieAvg[k] = v
	}
	for k, v := range f.seriesAvg {
		tx.seriesAvg[k] = v
	}
	if err := fn(tx); err != nil {
		return err
	}
	f.movieAvg = tx.movieAvg
	f.seriesAvg = tx.seriesAvg
	return nil
}

func (f *fakeRatingRepo) ListMovieIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.movieRatings))
	for id := range f.movieRatings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeRatingRepo) ListSeriesIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.seriesRatings))
	for id := range f.seriesRatings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeRatingRepo) RatingsForTitle(ctx context.Context, ref models.TitleRef) ([]int, error) {
	if ref.Kind == models.TitleMovie {
		return f.movieRatings[ref.ID], nil
	}
	return f.seriesRatings[ref.ID], nil
}

func (f *fakeRatingRepo) SetAverageRating(ctx context.Context, ref models.TitleRef, avg float64) error {
	if f.failRef != nil && *f.failRef == ref {
		return errors.New("write failed")
	}
	if ref.Kind == models.TitleMovie {
		f.movieAvg[ref.ID] = avg
	} else {
		f.seriesAvg[ref.ID] = avg
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce_ComputesExactMeans(t *testing.T) {
	repo := newFakeRatingRepo()
	repo.movieRatings[1] = []int{10, 9, 10}
	repo.movieRatings[2] = []int{4}
	repo.seriesRatings[1] = []int{10, 10}

	job := NewRatingJob(repo, nil, testLogger(), time.Minute)

	err := job.RunOnce(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, float64(29)/3, repo.movieAvg[1])
	assert.Equal(t, 4.0, repo.movieAvg[2])
	assert.Equal(t, 10.0, repo.seriesAvg[1])
}

func TestRunOnce_ResetsToZeroWithoutReviews(t *testing.T) {
	repo := newFakeRatingRepo()
	repo.movieRatings[1] = nil
	repo.movieAvg[1] = 8.7 // stale value from before the reviews were deleted

	job := NewRatingJob(repo, nil, testLogger(), time.Minute)

	err := job.RunOnce(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0.0, repo.movieAvg[1])
}

func TestRunOnce_Idempotent(t *testing.T) {
	repo := newFakeRatingRepo()
	repo.movieRatings[1] = []int{7, 8}

	job := NewRatingJob(repo, nil, testLogger(), time.Minute)

	assert.NoError(t, job.RunOnce(context.Background()))
	first := repo.movieAvg[1]
	assert.NoError(t, job.RunOnce(context.Background()))

	assert.Equal(t, first, repo.movieAvg[1])
	assert.Equal(t, 7.5, first)
}

func TestRunOnce_AbortLeavesAveragesUntouched(t *testing.T) {
	repo := newFakeRatingRepo()
	repo.movieRatings[1] = []int{10}
	repo.movieRatings[2] = []int{2}
	repo.movieAvg[1] = 5.0
	repo.movieAvg[2] = 5.0
	failRef := models.MovieRef(2)
	repo.failRef = &failRef

	job := NewRatingJob(repo, nil, testLogger(), time.Minute)

	err := job.RunOnce(context.Background())

	assert.Error(t, err)
	// the batch rolled back, so even the first movie keeps its old value
	assert.Equal(t, 5.0, repo.movieAvg[1])
	assert.Equal(t, 5.0, repo.movieAvg[2])
}

func TestStartStop_DrainsCleanly(t *testing.T) {
	repo := newFakeRatingRepo()
	repo.movieRatings[1] = []int{6}

	job := NewRatingJob(repo, nil, testLogger(), 10*time.Millisecond)
	job.Start()
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, 6.0, repo.movieAvg[1])
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]int{}))
	assert.Equal(t, 7.0, Mean([]int{7}))
	assert.Equal(t, float64(29)/3, Mean([]int{10, 9, 10}))
}
