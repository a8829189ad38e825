package config

import (
	"errors"
	"fmt"
)

// ValidateConfig rejects configurations that cannot possibly run. The
// JWT secret is mandatory everywhere; a database password only in
// production.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if cfg.ServerPort == "" {
		return errors.New("server port must not be empty")
	}
	if cfg.MealDBTimeout <= 0 {
		return fmt.Errorf("mealdb timeout must be positive, got %v", cfg.MealDBTimeout)
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			return errors.New("DB_PASSWORD is required in production")
		}
	}

	return nil
}
