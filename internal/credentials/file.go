package credentials

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/khoi-stripe/danddy/internal/errors"
)

// FileStore persists the token to a single file, created with owner
// only permissions. It stands in for the platform keychain the native
// clients use.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.InvalidArgument("token file path is required")
	}
	return &FileStore{path: path}, nil
}

// Token reads the stored token
func (f *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	return token, token != ""
}

// Save writes the token, creating parent directories as needed
func (f *FileStore) Save(token string) error {
	if token == "" {
		return errors.InvalidArgument("token must not be empty")
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "failed to create token directory")
		}
	}

	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "failed to write token file")
	}
	return nil
}

// Delete removes the token file
func (f *FileStore) Delete() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token file")
	}
	return nil
}

var _ Store = (*FileStore)(nil)
