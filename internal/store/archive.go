package store

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
)

// BuildArchive builds a fresh deflate-compressed ZIP of every file currently
// in the store, all at top level. An empty or missing store yields a valid
// zero-entry archive. Cost is proportional to total stored bytes; nothing is
// cached between calls.
func (s *UploadStore) BuildArchive() (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	names, err := s.List()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if err := s.addToArchive(zw, name); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *UploadStore) addToArchive(zw *zip.Writer, name string) error {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
