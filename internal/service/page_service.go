package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"static-page/internal/metrics"
	"static-page/internal/models"
)

const indexContentType = "text/html; charset=utf-8"

// PageService serves the fixed index document
type PageService struct {
	indexPath string
	metrics   *metrics.Metrics
}

// NewPageService creates a new page service for the document at indexPath
func NewPageService(indexPath string, metrics *metrics.Metrics) *PageService {
	return &PageService{
		indexPath: indexPath,
		metrics:   metrics,
	}
}

// IndexPath returns the location of the index document
func (s *PageService) IndexPath() string {
	return s.indexPath
}

// Index opens the index document. It is read on every call, so edits on disk
// show up without a restart.
func (s *PageService) Index(ctx context.Context) (*models.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrIndexNotFound
		}
		return nil, fmt.Errorf("failed to open index document: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat index document: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrIndexNotFound
	}

	s.metrics.IncrementIndexHits()

	return &models.Asset{
		Name:        info.Name(),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: indexContentType,
		Content:     f,
	}, nil
}
