package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists each key as <dir>/<key>.json. Default backend for local runs.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Load(_ context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path(key), err)
	}
	return blob, nil
}

func (f *File) Save(_ context.Context, key string, data []byte) error {
	if err := os.WriteFile(f.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path(key), err)
	}
	return nil
}
