package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"studio-booking/internal/pkg/errs"
)

type LocalBackend struct {
	basePath string
}

func NewLocalBackend(basePath string) (*LocalBackend, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create storage directory")
	}
	return &LocalBackend{basePath: basePath}, nil
}

func (b *LocalBackend) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	fullPath := filepath.Join(b.basePath, key)

	// write to a temp file first so a reader never sees a partial upload
	tmp, err := os.CreateTemp(b.basePath, ".upload-*")
	if err != nil {
		return errs.Wrap(err, "failed to create file")
	}
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errs.Wrap(err, "failed to write file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.Wrap(err, "failed to close file")
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.Wrap(err, "failed to move file into place")
	}
	return nil
}

func (b *LocalBackend) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	f, err := os.Open(filepath.Join(b.basePath, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errs.Wrapf(ErrObjectNotFound, "key %s", key)
		}
		return nil, "", errs.Wrap(err, "failed to open file")
	}
	return f, "", nil
}

func (b *LocalBackend) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(b.basePath, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
