package storage

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"formflow-backend/src/utils"
)

// Store writes and reads binaries under a root directory on local disk.
// Paths handed out are relative to the root so the rows stay valid when the
// deployment moves.
type Store struct {
	Root string
}

func New(root string) *Store {
	return &Store{Root: root}
}

// DefaultRoot resolves the upload directory from the environment.
func DefaultRoot() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// Put persists data under key and returns the relative path to it.
func (s *Store) Put(key string, data []byte) (string, error) {
	full := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", &utils.StorageError{Op: "put", Path: key, Err: err}
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", &utils.StorageError{Op: "put", Path: key, Err: err}
	}
	return filepath.ToSlash(filepath.Join("/", key)), nil
}

// Get reads the binary behind a path previously returned by Put.
func (s *Store) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return nil, &utils.StorageError{Op: "get", Path: path, Err: err}
	}
	return data, nil
}

// Delete removes the backing file. Callers on delete paths must treat a
// failure as non-fatal; DeleteQuiet does that for them.
func (s *Store) Delete(path string) error {
	if err := os.Remove(s.resolve(path)); err != nil {
		return &utils.StorageError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

// DeleteQuiet removes the backing file and only logs on failure. A missing
// or locked file must never make the owning database row un-deletable.
func (s *Store) DeleteQuiet(path string) {
	if err := s.Delete(path); err != nil {
		log.Println("⚠️ Warning: could not remove file:", err)
	}
}

func (s *Store) resolve(path string) string {
	rel := strings.TrimPrefix(filepath.ToSlash(path), "/")
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}
