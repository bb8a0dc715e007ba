package models

import (
	"io"
	"time"
)

// Asset is a file opened for a single response
type Asset struct {
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
	Content     io.ReadSeekCloser
}

// Close releases the underlying file
func (a *Asset) Close() error {
	if a.Content == nil {
		return nil
	}
	return a.Content.Close()
}
