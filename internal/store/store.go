package store

import (
	"io"
	"os"
	"path/filepath"
)

// UploadStore is a flat directory of uploaded video files. Filenames are
// chosen by the caller; saving an existing name overwrites it (last write
// wins, no collision detection).
type UploadStore struct {
	dir string
}

// New returns a store rooted at dir, creating the directory if needed.
func New(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadStore{dir: dir}, nil
}

func (s *UploadStore) Dir() string {
	return s.dir
}

func (s *UploadStore) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// Save writes the stream to filename, truncating any existing file.
func (s *UploadStore) Save(filename string, r io.Reader) error {
	f, err := os.Create(s.Path(filename))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Close()
}

// Open returns the stored file for reading; fs.ErrNotExist on a miss.
func (s *UploadStore) Open(filename string) (*os.File, error) {
	return os.Open(s.Path(filename))
}

// List enumerates the regular files in the store. A missing directory is an
// empty store, not an error.
func (s *UploadStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
