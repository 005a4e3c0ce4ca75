// Package imagestore owns the mapping between an entity's image reference and
// a file in the managed image directory. Files are stored under a generated
// name; the stored reference is the public path "/img/<name>".
package imagestore

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublicPrefix is the URL prefix under which stored files are served.
const PublicPrefix = "/img"

// ErrNoFile is returned when a save is attempted without an uploaded file.
// Callers guard by checking for a file first; this is a fail-fast condition.
var ErrNoFile = errors.New("no image file provided")

// Converter turns an uploaded file into the canonical stored format. The
// actual format conversion is an external collaborator; the default
// passthrough copies bytes unchanged.
type Converter interface {
	Convert(dst io.Writer, src io.Reader) error
}

type passthrough struct{}

func (passthrough) Convert(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, src)
	return err
}

// Store manages the image directory.
type Store struct {
	dir  string
	conv Converter
	log  *zap.Logger
}

// New creates the managed directory if needed. conv may be nil, in which case
// uploads are stored unconverted.
func New(dir string, conv Converter, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir %q: %w", dir, err)
	}
	if conv == nil {
		conv = passthrough{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, conv: conv, log: log}, nil
}

// Dir returns the managed directory on disk.
func (s *Store) Dir() string { return s.dir }

// Save writes the uploaded file under a generated name and returns the public
// path to store on the entity.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("image upload failed: %w", ErrNoFile)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ".webp"
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer dst.Close()

	if err := s.conv.Convert(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// Remove deletes the file referenced by a stored public path. Only the
// basename is honored, so references cannot escape the managed directory.
// A missing file is not an error; Remove is idempotent.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	target := filepath.Join(s.dir, filepath.Base(path))
	if _, err := os.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("file deletion failed: %w", err)
	}
	if err := os.Remove(target); err != nil {
		return fmt.Errorf("file deletion failed: %w", err)
	}
	return nil
}

// RemoveQuiet deletes best-effort: failures are logged and swallowed.
// Used wherever a deletion error must not fail the request.
func (s *Store) RemoveQuiet(path string) {
	if err := s.Remove(path); err != nil {
		s.log.Warn("image deletion failed", zap.String("path", path), zap.Error(err))
	}
}
