package storage

import (
	"io"
	"net/http"
	"strings"

	"studio-booking/internal/pkg/errs"
)

const DefaultMaxSize int64 = 10 << 20

var (
	ErrFileTooLarge    = errs.New("file exceeds maximum size")
	ErrInvalidMimeType = errs.New("file type not allowed")
	ErrEmptyFile       = errs.New("file is empty")
)

var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

// ValidateProof reads at most maxSize bytes and sniffs the content type from
// the data itself; the client-declared type is ignored.
func ValidateProof(r io.Reader, maxSize int64) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to read file")
	}
	if len(data) == 0 {
		return nil, "", ErrEmptyFile
	}
	if int64(len(data)) > maxSize {
		return nil, "", ErrFileTooLarge
	}

	mimeType := http.DetectContentType(data)
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if _, ok := allowedTypes[mimeType]; !ok {
		return nil, "", errs.Wrapf(ErrInvalidMimeType, "got %s", mimeType)
	}
	return data, mimeType, nil
}

func ExtensionFor(mimeType string) string {
	return allowedTypes[mimeType]
}

func ContentTypeFor(ext string) string {
	ext = strings.ToLower(ext)
	for mt, e := range allowedTypes {
		if e == ext {
			return mt
		}
	}
	return ""
}
