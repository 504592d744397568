package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/tagkit/internal/errors"
)

// DiskStore writes objects as files below a directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Newf(errors.CodeStoreFailure, "Cannot create output directory %s.", dir).Wrap(err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the root directory.
func (s *DiskStore) Dir() string { return s.dir }

// Put implements Store. The file is written to a temporary name and renamed
// into place. The content type is not recorded.
func (s *DiskStore) Put(ctx context.Context, key, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Newf(errors.CodeStoreFailure, "Cannot create directory for %s.", key).Wrap(err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".tagkit-*")
	if err != nil {
		return errors.Newf(errors.CodeStoreFailure, "Cannot write %s.", key).Wrap(err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Newf(errors.CodeStoreFailure, "Cannot write %s.", key).Wrap(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Newf(errors.CodeStoreFailure, "Cannot write %s.", key).Wrap(err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return errors.Newf(errors.CodeStoreFailure, "Cannot write %s.", key).Wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Newf(errors.CodeStoreFailure, "Cannot write %s.", key).Wrap(err)
	}
	return nil
}
