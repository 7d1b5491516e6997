// Package storage keeps uploaded menu images in an object store.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var ErrUnsupportedImage = errors.New("only jpg, jpeg, png, gif and webp images are accepted")

type ImageStore interface {
	// Upload stores the image under name, replacing any object with the same
	// name, and returns its public URL.
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
	// List returns the public URLs of every stored image.
	List(ctx context.Context) ([]string, error)
}

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// CleanName strips directories from a client supplied filename and checks
// that it looks like an image. The returned content type is derived from the
// extension when the client did not send an image/* type.
func CleanName(name, contentType string) (string, string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "", "", ErrUnsupportedImage
	}
	ext := strings.ToLower(filepath.Ext(base))
	guessed, ok := imageExtensions[ext]
	if !ok {
		return "", "", ErrUnsupportedImage
	}
	if !strings.HasPrefix(contentType, "image/") {
		contentType = guessed
	}
	return base, contentType, nil
}
