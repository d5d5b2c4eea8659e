package history

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each key in its own JSON file under a data
// directory. It is the default backend.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on the first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value stored under key. A missing file is not an
// error; it reports absent.
func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", s.path(key), err)
	}
	return string(data), true, nil
}

// Set replaces the value stored under key. Whole-value writes only;
// last writer wins.
func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path(key), err)
	}
	return nil
}
