package storage

import (
	"io"
	"os"
	"path/filepath"
)

// ImageStore persists uploaded project images under a configured directory.
// Files keep their original upload filename, so a second upload with the
// same name overwrites the first (last write wins). Writes are best-effort:
// they share no transaction with the database.
type ImageStore struct {
	dir string
}

// NewImageStore creates the upload directory if needed and returns a store
// rooted there.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{dir: dir}, nil
}

// Dir returns the directory the store writes into
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save writes the uploaded content under the given filename and returns the
// stored name. Any path components in the client-supplied name are stripped
// so uploads cannot escape the store directory.
func (s *ImageStore) Save(src io.Reader, filename string) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == string(filepath.Separator) {
		name = "upload"
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
