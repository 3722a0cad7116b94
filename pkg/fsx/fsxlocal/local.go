package fsxlocal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobmatchai/backend/pkg/fsx"
)

// LocalFileSystem implements fsx.FileSystem on a directory. Intended for
// development; production deployments use the S3 variant.
type LocalFileSystem struct {
	root string
}

func NewLocalFileSystem(root string) (fsx.FileSystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &LocalFileSystem{root: root}, nil
}

func (f *LocalFileSystem) path(p string) string {
	return filepath.Join(f.root, filepath.Clean("/"+p))
}

func (f *LocalFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(f.path(path))
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return data, nil
}

func (f *LocalFileSystem) WriteFile(_ context.Context, path string, data []byte, _ string) error {
	full := f.path(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	return nil
}

func (f *LocalFileSystem) DeleteFile(_ context.Context, path string) error {
	if err := os.Remove(f.path(path)); err != nil {
		return fmt.Errorf("delete file %s: %w", path, err)
	}
	return nil
}

func (f *LocalFileSystem) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(f.path(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat file %s: %w", path, err)
	}
	return true, nil
}
