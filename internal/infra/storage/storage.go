package storage

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errs.New("stored object not found")
	ErrInvalidRef     = errs.New("invalid proof reference")
	ErrUnknownDriver  = errs.New("unknown storage driver")
)

// Backend is a flat key/value object store.
type Backend interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// ProofStore validates uploads and names them before handing them to a
// backend. Refs are "<uuid><ext>" and never contain path separators.
type ProofStore struct {
	backend Backend
	maxSize int64
}

func NewProofStore(backend Backend, maxSize int64) *ProofStore {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &ProofStore{backend: backend, maxSize: maxSize}
}

// New builds the store for the configured driver.
func New(ctx context.Context, cfg config.StorageConfig) (*ProofStore, error) {
	var (
		backend Backend
		err     error
	)
	switch strings.ToLower(cfg.Driver) {
	case "", "local":
		backend, err = NewLocalBackend(cfg.LocalDir)
	case "s3":
		backend, err = NewS3Backend(ctx, S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			Endpoint:     cfg.S3Endpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		})
	default:
		return nil, errs.Wrapf(ErrUnknownDriver, "driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return NewProofStore(backend, cfg.MaxUploadBytes), nil
}

func (s *ProofStore) Store(ctx context.Context, r io.Reader, _ string) (string, error) {
	data, mimeType, err := ValidateProof(r, s.maxSize)
	if err != nil {
		return "", errs.Mark(err, errs.ErrValidation)
	}

	ref := uuid.NewString() + ExtensionFor(mimeType)
	if err := s.backend.Put(ctx, ref, bytes.NewReader(data), int64(len(data)), mimeType); err != nil {
		return "", errs.Wrap(err, "failed to store proof")
	}
	return ref, nil
}

func (s *ProofStore) Exists(ctx context.Context, ref string) (bool, error) {
	if !ValidRef(ref) {
		return false, nil
	}
	return s.backend.Exists(ctx, ref)
}

func (s *ProofStore) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	if !ValidRef(ref) {
		return nil, "", errs.Mark(ErrInvalidRef, errs.ErrValidation)
	}
	rc, contentType, err := s.backend.Get(ctx, ref)
	if err != nil {
		if errs.Is(err, ErrObjectNotFound) {
			return nil, "", errs.Mark(err, errs.ErrNotFound)
		}
		return nil, "", errs.Wrap(err, "failed to open proof")
	}
	if contentType == "" {
		contentType = ContentTypeFor(filepath.Ext(ref))
	}
	return rc, contentType, nil
}

func ValidRef(ref string) bool {
	ext := filepath.Ext(ref)
	if ContentTypeFor(ext) == "" {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(ref, ext))
	return err == nil
}
