package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/middleware/auth"
	"moviehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds a development database with a small, recognizable data set.
// Every insert is keyed on a natural uniqueness so re-running the
// command is a no-op.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := seed(db, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeding complete")
}

func seed(db *gorm.DB, logger *slog.Logger) error {
	alice, err := ensureUser(db, "alice", "alice@example.com", "password123", true)
	if err != nil {
		return err
	}
	bob, err := ensureUser(db, "bob", "bob@example.com", "password123", false)
	if err != nil {
		return err
	}
	logger.Info("seeded users", "count", 2)

	platforms := map[string]*models.Platform{}
	for _, p := range []models.Platform{
		{Name: "Netflix", Website: "https://www.netflix.com", Description: "Streaming service"},
		{Name: "Hulu", Website: "https://www.hulu.com", Description: "Streaming service"},
		{Name: "Disney+", Website: "https://www.disneyplus.com", Description: "Streaming service"},
	} {
		platform := p
		if err := db.Where(models.Platform{Name: platform.Name}).
			FirstOrCreate(&platform).Error; err != nil {
			return fmt.Errorf("seed platform %q: %w", platform.Name, err)
		}
		platforms[platform.Name] = &platform
	}
	logger.Info("seeded platforms", "count", len(platforms))

	genres := map[string]*models.Genre{}
	for _, name := range []string{"Drama", "Science Fiction", "Comedy", "Thriller"} {
		genre := models.Genre{Name: name}
		if err := db.Where(models.Genre{Name: name}).
			FirstOrCreate(&genre).Error; err != nil {
			return fmt.Errorf("seed genre %q: %w", name, err)
		}
		genres[name] = &genre
	}
	logger.Info("seeded genres", "count", len(genres))

	movies := []struct {
		title     string
		desc      string
		release   string
		duration  int
		genres    []string
		platforms []string
	}{
		{"Arrival Window", "First contact told backwards.", "2021-03-12", 118, []string{"Science Fiction", "Drama"}, []string{"Netflix"}},
		{"The Long Quiet", "A lighthouse keeper's final season.", "2019-10-04", 104, []string{"Drama"}, []string{"Hulu"}},
		{"Fast Talkers", "Improv troupe takes a corporate gig.", "2023-06-30", 96, []string{"Comedy"}, []string{"Disney+", "Netflix"}},
		{"Null Pointer", "A debugger who cannot stop.", "2022-01-21", 127, []string{"Thriller", "Science Fiction"}, []string{"Netflix", "Hulu"}},
	}

	seededMovies := map[string]*models.Movie{}
	for _, m := range movies {
		release, err := time.Parse("2006-01-02", m.release)
		if err != nil {
			return err
		}
		duration := m.duration
		movie := models.Movie{
			Title:       m.title,
			Description: m.desc,
			ReleaseDate: &release,
			Duration:    &duration,
		}
		if err := db.Omit("Genres", "Platforms").
			Where("title = ? AND release_date = ?", m.title, release).
			FirstOrCreate(&movie).Error; err != nil {
			return fmt.Errorf("seed movie %q: %w", m.title, err)
		}

		var gs []models.Genre
		for _, name := range m.genres {
			gs = append(gs, *genres[name])
		}
		if err := db.Model(&movie).Association("Genres").Replace(gs); err != nil {
			return fmt.Errorf("seed movie genres %q: %w", m.title, err)
		}
		var ps []models.Platform
		for _, name := range m.platforms {
			ps = append(ps, *platforms[name])
		}
		if err := db.Model(&movie).Association("Platforms").Replace(ps); err != nil {
			return fmt.Errorf("seed movie platforms %q: %w", m.title, err)
		}
		seededMovies[m.title] = &movie
	}
	logger.Info("seeded movies", "count", len(seededMovies))

	watchlist := models.Watchlist{
		UserID:      bob.ID,
		Name:        "Weekend queue",
		Description: "Things to watch when it rains",
	}
	if err := db.Where(models.Watchlist{UserID: bob.ID, Name: watchlist.Name}).
		FirstOrCreate(&watchlist).Error; err != nil {
		return fmt.Errorf("seed watchlist: %w", err)
	}
	for _, title := range []string{"Arrival Window", "Null Pointer"} {
		item := models.WatchlistItem{WatchlistID: watchlist.ID, MovieID: seededMovies[title].ID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error; err != nil {
			return fmt.Errorf("seed watchlist item %q: %w", title, err)
		}
	}

	ratings := []struct {
		user  *models.User
		movie string
		score int
	}{
		{alice, "Arrival Window", 5},
		{bob, "Arrival Window", 4},
		{bob, "Fast Talkers", 3},
	}
	for _, r := range ratings {
		rating := models.Rating{UserID: r.user.ID, MovieID: seededMovies[r.movie].ID, Score: r.score}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"score": r.score}),
		}).Create(&rating).Error; err != nil {
			return fmt.Errorf("seed rating: %w", err)
		}
	}

	review := models.Review{
		UserID:  alice.ID,
		MovieID: seededMovies["Arrival Window"].ID,
		Title:   "Quietly devastating",
		Body:    "The structure rewards a second watch.",
	}
	if err := db.Where(models.Review{
		UserID:  review.UserID,
		MovieID: review.MovieID,
		Title:   review.Title,
	}).FirstOrCreate(&review).Error; err != nil {
		return fmt.Errorf("seed review: %w", err)
	}

	return nil
}

func ensureUser(db *gorm.DB, username, email, password string, staff bool) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user = models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsStaff:  staff,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("seed user %q: %w", username, err)
	}
	return &user, nil
}
