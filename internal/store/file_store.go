package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore reads and writes level payloads as files under one
// directory. It is the local counterpart of LevelRepo: same opaque
// byte-buffer contract, different backing.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Read returns the payload stored under name.
func (s *FileStore) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	return data, nil
}

// Write stores the payload under name, creating the directory as
// needed.
func (s *FileStore) Write(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create level dir: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("write level %s: %w", name, err)
	}
	return nil
}
