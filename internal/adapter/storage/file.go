package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/spf13/afero"
)

var _ port.SnapshotStorage = (*FileStorage)(nil)

const (
	fileExt  = ".json"
	dirPerm  = 0o755
	filePerm = 0o644
)

// A FileStorage keeps every snapshot in its own file named after the
// namespace.
type FileStorage struct {
	fs afero.Fs
}

func NewFileStorage(fs afero.Fs) FileStorage {
	return FileStorage{fs}
}

// NewDirStorage roots the storage at dir on the OS filesystem.
func NewDirStorage(dir string) (FileStorage, error) {
	const op = "NewDirStorage"

	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, dirPerm); err != nil {
		return FileStorage{}, fmt.Errorf("%s: %w", op, err)
	}
	return FileStorage{afero.NewBasePathFs(osFs, dir)}, nil
}

// NewMemoryStorage keeps snapshots in process memory.
func NewMemoryStorage() FileStorage {
	return FileStorage{afero.NewMemMapFs()}
}

func (s FileStorage) Load(ctx context.Context, namespace string) ([]byte, error) {
	const op = "FileStorage.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	name, err := s.filename(namespace)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := afero.ReadFile(s.fs, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

// Save replaces the snapshot through a temporary file, so readers never
// observe a partial write.
func (s FileStorage) Save(
	ctx context.Context, namespace string, data []byte,
) error {
	const op = "FileStorage.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	name, err := s.filename(namespace)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.fs.MkdirAll(path.Dir(name), dirPerm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp := name + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s FileStorage) filename(namespace string) (string, error) {
	if !validNamespace(namespace) {
		return "", fmt.Errorf("%q: %w", namespace, ErrInvalidNamespace)
	}
	return "/" + namespace + fileExt, nil
}
