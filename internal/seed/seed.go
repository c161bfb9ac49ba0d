package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/repository"
	"cinehub/internal/middleware/auth"

	"gorm.io/gorm"
)

// Run populates an empty database with two accounts and a small catalog.
// A database that already has users is left alone.
func Run(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	users := repository.NewUserRepository(db)
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		logger.Debug("seed skipped, users already present", "count", count)
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		adminHash, err := auth.HashPassword("admin123")
		if err != nil {
			return err
		}
		userHash, err := auth.HashPassword("user123")
		if err != nil {
			return err
		}

		admin := models.User{Email: "admin@cinema.com", PasswordHash: adminHash, Role: models.RoleAdmin}
		user := models.User{Email: "user@cinema.com", PasswordHash: userHash, Role: models.RoleUser}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		boxOffice := func(v float64) *float64 { return &v }
		movies := []models.Movie{
			{
				Title:       "The Matrix",
				Description: "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
				ReleaseDate: time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC),
				Duration:    136,
				Genre:       "Action",
				Director:    "The Wachowskis",
				BoxOffice:   boxOffice(463517383),
			},
			{
				Title:       "Inception",
				Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
				ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
				Duration:    148,
				Genre:       "Sci-Fi",
				Director:    "Christopher Nolan",
				BoxOffice:   boxOffice(836836967),
			},
		}
		if err := tx.Create(&movies).Error; err != nil {
			return err
		}

		series := models.Series{
			Title:       "Breaking Bad",
			Description: "A high school chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine in order to secure his family's future.",
			ReleaseDate: time.Date(2008, 1, 20, 0, 0, 0, 0, time.UTC),
			Genre:       "Drama",
		}
		if err := tx.Create(&series).Error; err != nil {
			return err
		}

		episodes := []models.Episode{
			{
				SeriesID:      series.ID,
				SeasonNumber:  1,
				EpisodeNumber: 1,
				Title:         "Pilot",
				Description:   "A high school chemistry teacher learns he has cancer and decides to cook meth to provide for his family.",
				Duration:      58,
			},
			{
				SeriesID:      series.ID,
				SeasonNumber:  1,
				EpisodeNumber: 2,
				Title:         "Cat's in the Bag...",
				Description:   "Walter and Jesse try to dispose of two bodies while Skyler becomes suspicious of Walter's behavior.",
				Duration:      48,
			},
		}
		if err := tx.Create(&episodes).Error; err != nil {
			return err
		}

		posters := []models.Poster{
			{MovieID: &movies[0].ID, URL: "https://example.com/matrix-poster.jpg", MimeType: "image/jpeg"},
			{MovieID: &movies[1].ID, URL: "https://example.com/inception-poster.jpg", MimeType: "image/jpeg"},
			{SeriesID: &series.ID, URL: "https://example.com/breaking-bad-poster.jpg", MimeType: "image/jpeg"},
		}
		if err := tx.Create(&posters).Error; err != nil {
			return err
		}

		reviews := []models.Review{
			{UserID: user.ID, MovieID: &movies[0].ID, Text: "Mind-bending masterpiece that redefined sci-fi cinema!", Rating: 10},
			{UserID: user.ID, MovieID: &movies[1].ID, Text: "Nolan's best work. Complex, beautiful, and unforgettable.", Rating: 9},
			{UserID: user.ID, SeriesID: &series.ID, Text: "The greatest TV series ever made. Perfect from start to finish.", Rating: 10},
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return err
		}

		favorites := []models.Favorite{
			{UserID: user.ID, MovieID: &movies[0].ID},
			{UserID: user.ID, SeriesID: &series.ID},
		}
		if err := tx.Create(&favorites).Error; err != nil {
			return err
		}

		logger.Info("seeded database",
			"users", 2,
			"movies", len(movies),
			"episodes", len(episodes),
		)
		return nil
	})
}
