// Package upload stores multipart file fields on local disk and hands the
// caller an explicit value: the public path plus a Discard func that removes
// the file again if the rest of the request fails.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/art-nursing/backend/internal/slug"
)

var (
	// ErrNoFile is returned when the multipart field is absent
	ErrNoFile = errors.New("no file in request")
	// ErrFileTooLarge is returned when the upload exceeds the size cap
	ErrFileTooLarge = errors.New("file too large")
	// ErrBadExtension is returned when the file extension is not allowed
	ErrBadExtension = errors.New("file type not allowed")
)

// Extension allowlists per route kind
var (
	Images    = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}
	Documents = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx"}
)

// PublicPrefix is the URL prefix uploads are served under
const PublicPrefix = "/uploads"

// Store writes uploads into a single local directory
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates the upload directory if needed and returns a store
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// File is a stored upload. Path is the public relative URL path.
// Discard removes the file; it is safe to call more than once and is meant for
// the failure paths of the handler that acquired the file.
type File struct {
	Path string
	Name string

	full string
	once sync.Once
}

// Discard deletes the stored file
func (f *File) Discard() {
	f.once.Do(func() {
		_ = os.Remove(f.full)
	})
}

// FromRequest saves the named multipart field and returns the stored file.
// The declared filename is sanitized and kept as the suffix of the stored
// name so uploads remain recognizable on disk and in URLs.
func (s *Store) FromRequest(r *http.Request, field string, allowed []string) (*File, error) {
	src, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrNoFile
		}
		return nil, fmt.Errorf("failed to read multipart field %q: %w", field, err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extAllowed(ext, allowed) {
		return nil, ErrBadExtension
	}

	base := slug.Make(strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename)))
	name := uuid.New().String()[:8] + "-" + base + ext
	full := filepath.Join(s.dir, name)

	dst, err := os.Create(full)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	// Copy at most maxBytes+1 so an oversized upload is detectable
	written, err := io.Copy(dst, io.LimitReader(src, s.maxBytes+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(full)
		return nil, ErrFileTooLarge
	}

	return &File{
		Path: PublicPrefix + "/" + name,
		Name: name,
		full: full,
	}, nil
}

// Remove deletes a previously stored upload by its public path.
// Paths outside the store are ignored.
func (s *Store) Remove(publicPath string) error {
	name := strings.TrimPrefix(publicPath, PublicPrefix+"/")
	if name == publicPath || name == "" || strings.Contains(name, "/") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the directory uploads are stored in
func (s *Store) Dir() string {
	return s.dir
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
