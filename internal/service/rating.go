package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jxchen21/tastebuds-backend/internal/models"
	"gorm.io/gorm"
)

// RatingService stores per-(user, recipe) ratings and computes
// aggregate statistics for recipe pages.
type RatingService struct {
	db *gorm.DB
}

// NewRatingService creates a new RatingService instance.
func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// RatingView is one rating as shown on a recipe page.
type RatingView struct {
	Username  string    `json:"username"`
	Value     int       `json:"value"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingStats aggregates all ratings for one recipe. Average is absent
// when there are no ratings; Stars is the integer star display value,
// 0 when absent.
type RatingStats struct {
	Ratings []RatingView `json:"ratings"`
	Average *float64     `json:"average"`
	Stars   int          `json:"stars"`
	Count   int          `json:"count"`
}

// Submit creates or replaces the caller's rating for a recipe. The
// returned bool is true when a new rating was created, false when an
// existing one was updated.
func (s *RatingService) Submit(ctx context.Context, userID uuid.UUID, recipeID string, value int, comment string) (bool, error) {
	if value < 1 || value > 5 {
		return false, ErrInvalidRating
	}

	var existing models.Rating
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		existing.Value = value
		existing.Comment = comment
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	rating := models.Rating{
		UserID:   userID,
		RecipeID: recipeID,
		Value:    value,
		Comment:  comment,
	}
	if err := s.db.WithContext(ctx).Create(&rating).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Stats computes the rating list and aggregates for a recipe. Ratings
// are listed newest first.
func (s *RatingService) Stats(ctx context.Context, recipeID string) (*RatingStats, error) {
	var ratings []models.Rating
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	stats := &RatingStats{
		Ratings: make([]RatingView, 0, len(ratings)),
		Count:   len(ratings),
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Value
		stats.Ratings = append(stats.Ratings, RatingView{
			Username:  r.User.Username,
			Value:     r.Value,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	if len(ratings) > 0 {
		avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
		stats.Average = &avg
		stats.Stars = int(math.Round(avg))
	}

	return stats, nil
}
