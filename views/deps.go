package views

import (
	"context"
	"time"

	"smartimmo/models"
)

// PropertiesAPI is the part of the backend client the pages use
type PropertiesAPI interface {
	GetProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, propertyID int64) error
}

type Assistant interface {
	Ask(ctx context.Context, prompt string) (*models.AiResponse, error)
}

// Timing sets how long toasts stay up: Short for confirmations, Long for errors
type Timing struct {
	Short time.Duration
	Long  time.Duration
}

var DefaultTiming = Timing{Short: 2 * time.Second, Long: 3 * time.Second}
