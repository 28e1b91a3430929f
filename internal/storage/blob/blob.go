// Package blob stores profile images on the local filesystem. Files are
// written under a single upload directory and served back by filename.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jymtan/contact-manager-be/internal/logging"
)

// MaxImageSize caps uploads at 5 MiB.
const MaxImageSize = 5 << 20

var (
	// ErrEmptyFile indicates a zero-length upload.
	ErrEmptyFile = errors.New("file is empty")
	// ErrNotImage indicates a content type outside the image/* allowlist.
	ErrNotImage = errors.New("only image files are allowed")
	// ErrTooLarge indicates the upload exceeds MaxImageSize.
	ErrTooLarge = errors.New("file size exceeds 5MB limit")
)

// Store writes and serves image files under dir.
type Store struct {
	dir string
	log logging.Logger
}

// New creates the upload directory if needed and returns a Store.
func New(dir string, log logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Save validates and stores one uploaded image for ownerID. It returns the
// reference kept on the account record, e.g. "uploads/7_9f1c...c2.png".
// Validation happens before any bytes touch disk.
func (s *Store) Save(originalName, contentType string, size int64, r io.Reader, ownerID int64) (string, error) {
	if size == 0 {
		return "", ErrEmptyFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}
	if size > MaxImageSize {
		return "", ErrTooLarge
	}

	name := fmt.Sprintf("%d_%s%s", ownerID, uuid.NewString(), strings.ToLower(filepath.Ext(originalName)))
	target := filepath.Join(s.dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	// The declared size is client-supplied; enforce the cap on the actual bytes too.
	written, err := io.Copy(f, io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if written > MaxImageSize {
		os.Remove(target)
		return "", ErrTooLarge
	}

	return filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name)), nil
}

// Delete removes a previously stored image. Failure is logged, not
// surfaced; a stale file must not block a profile update.
func (s *Store) Delete(ref string) {
	if ref == "" {
		return
	}
	name := filepath.Base(filepath.FromSlash(ref))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn(context.Background(), "failed to delete image", "ref", ref, "error", err)
	}
}

// Open returns the stored file for serving. Filenames are flattened to
// their base component so references cannot escape the upload directory.
func (s *Store) Open(filename string) (*os.File, error) {
	name := filepath.Base(filepath.FromSlash(filename))
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}
		return nil, err
	}
	return f, nil
}

// ContentTypeFor guesses a response content type from the file extension,
// defaulting to JPEG.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
