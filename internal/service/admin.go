package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jxchen21/tastebuds-backend/internal/models"
	"gorm.io/gorm"
)

// AdminService backs the staff account-management surface.
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// UserStats summarizes the account population for the dashboard.
type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Staff    int64 `json:"staff"`
}

// ListUsers returns every account, newest first, with population
// counts.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, *UserStats, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, nil, err
	}

	stats := &UserStats{Total: int64(len(users))}
	for _, u := range users {
		if u.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		if u.IsStaff {
			stats.Staff++
		}
	}
	return users, stats, nil
}

// DeactivateUser disables an account. Staff cannot deactivate
// themselves.
func (s *AdminService) DeactivateUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrCannotSelfDisable
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).
		Model(&user).
		Update("is_active", false).Error
}

// ReactivateUser re-enables an account.
func (s *AdminService) ReactivateUser(ctx context.Context, targetID uuid.UUID) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).
		Model(&user).
		Update("is_active", true).Error
}
