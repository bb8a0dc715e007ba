package repository

import (
	"context"
	"errors"
	"static-page/internal/models"
)

var (
	// ErrNotFound is returned when no regular file exists at the requested name
	ErrNotFound = errors.New("asset not found")
	// ErrOutsideRoot is returned when a name would resolve outside the base directory
	ErrOutsideRoot = errors.New("path escapes base directory")
)

// AssetRepository defines the interface for asset lookup
type AssetRepository interface {
	Open(ctx context.Context, name string) (*models.Asset, error)
	Close() error
}
