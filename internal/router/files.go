package router

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	httperrors "github.com/nhdewitt/http-from-tcp/internal/errors"
)

const fileMode = 0o644

// FileStore reads and writes regular files below a base directory. Names
// that would resolve outside it are rejected.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) resolve(name string) (string, error) {
	if s.dir == "" {
		return "", httperrors.Newf(httperrors.NotFound, "no served directory configured")
	}
	if !filepath.IsLocal(name) {
		return "", httperrors.Newf(httperrors.NotFound, "path %q escapes served directory", name)
	}
	return filepath.Join(s.dir, name), nil
}

// Read returns the full contents of name. Missing files, directories and
// unreadable files are all errors.NotFound.
func (s *FileStore) Read(name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, httperrors.New(httperrors.NotFound, err)
	}
	if !info.Mode().IsRegular() {
		return nil, httperrors.Newf(httperrors.NotFound, "%s is not a regular file", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, httperrors.New(httperrors.NotFound, err)
	}
	return data, nil
}

// Write creates or truncates name and stores data in it.
func (s *FileStore) Write(name string, data []byte) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, fs.FileMode(fileMode)); err != nil {
		return httperrors.New(httperrors.IOFailure, fmt.Errorf("writing %s: %w", name, err))
	}
	return nil
}
