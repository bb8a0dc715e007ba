package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"static-page/internal/models"
	"strings"
	"sync"
	"syscall"
)

// FileRepository implements AssetRepository on top of a directory
type FileRepository struct {
	mu   sync.Mutex
	root *os.Root
	dir  string
}

// NewFileRepository opens dir as the base directory for all lookups. A
// directory that does not exist yet is not an error: lookups find nothing
// until it appears.
func NewFileRepository(dir string) (*FileRepository, error) {
	repo := &FileRepository{dir: dir}
	if _, err := repo.openRoot(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to open static directory: %w", err)
	}

	return repo, nil
}

// Close releases the directory handle
func (r *FileRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.root == nil {
		return nil
	}
	err := r.root.Close()
	r.root = nil
	return err
}

// Dir returns the directory the repository serves from
func (r *FileRepository) Dir() string {
	return r.dir
}

func (r *FileRepository) openRoot() (*os.Root, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.root != nil {
		return r.root, nil
	}
	root, err := os.OpenRoot(r.dir)
	if err != nil {
		return nil, err
	}
	r.root = root
	return root, nil
}

// Open opens the regular file at name, a slash-separated path relative to the
// base directory. The caller owns the returned asset and must close it.
func (r *FileRepository) Open(ctx context.Context, name string) (*models.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) || name == "." {
		return nil, ErrOutsideRoot
	}

	root, err := r.openRoot()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open static directory: %w", err)
	}

	f, err := root.Open(name)
	if err != nil {
		return nil, mapOpenError(err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat asset: %w", err)
	}

	// Directories are never served
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, ErrNotFound
	}

	return &models.Asset{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Content: f,
	}, nil
}

func mapOpenError(err error) error {
	// Names the filesystem cannot hold cannot name a file either
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.EINVAL) {
		return ErrNotFound
	}
	// os.Root refuses symlinks and names that leave the directory
	if strings.Contains(err.Error(), "escapes from parent") {
		return ErrOutsideRoot
	}
	return fmt.Errorf("failed to open asset: %w", err)
}
