package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"static-page/internal/metrics"
	"static-page/internal/models"
	"static-page/internal/repository"
	"strings"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrPathTraversal = errors.New("path traversal attempt")
	ErrIndexNotFound = errors.New("index document not found")
)

// AssetService resolves request paths to files in the static directory
type AssetService struct {
	repo    repository.AssetRepository
	metrics *metrics.Metrics
}

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepository, metrics *metrics.Metrics) *AssetService {
	return &AssetService{
		repo:    repo,
		metrics: metrics,
	}
}

// Lookup resolves a URL path such as "/css/style.css" to an opened asset.
// The caller must close the returned asset.
func (s *AssetService) Lookup(ctx context.Context, urlPath string) (*models.Asset, error) {
	name, err := assetName(urlPath)
	if err != nil {
		return nil, err
	}

	asset, err := s.repo.Open(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		if errors.Is(err, repository.ErrOutsideRoot) {
			return nil, ErrPathTraversal
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	asset.ContentType = mime.TypeByExtension(path.Ext(name))
	s.metrics.IncrementStaticHits()

	return asset, nil
}

// assetName turns a URL path into a name relative to the static directory.
// Dotfiles, directories, empty segments and NUL bytes never name an asset.
func assetName(urlPath string) (string, error) {
	trimmed := strings.TrimPrefix(urlPath, "/")
	if trimmed == "" {
		return "", ErrAssetNotFound
	}

	if IsTraversal(urlPath) {
		return "", ErrPathTraversal
	}

	segments := strings.Split(trimmed, "/")
	for _, seg := range segments {
		if seg == "" || strings.HasPrefix(seg, ".") || strings.IndexByte(seg, 0) >= 0 {
			return "", ErrAssetNotFound
		}
	}

	return trimmed, nil
}

// IsTraversal reports whether urlPath tries to climb out of the directory it
// is resolved against.
func IsTraversal(urlPath string) bool {
	// Backslashes would act as separators on Windows
	if strings.Contains(urlPath, `\`) {
		return true
	}
	for _, seg := range strings.Split(urlPath, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
