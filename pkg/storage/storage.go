package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"video-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// File is a raw upload waiting to be stored.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileStorage persists uploads. Deleting a path that does not exist (or was
// only partially written) is not an error.
type FileStorage interface {
	Store(ctx context.Context, prefix string, file *File) (string, error)
	Delete(ctx context.Context, storedPath string) error
}

// New picks the backend named by cfg.Driver.
func New(cfg utils.StorageConfig, log *zap.Logger) (FileStorage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStorage(cfg.BaseDir, log)
	case "s3":
		return NewS3Storage(S3Config{
			Bucket:          cfg.Bucket,
			Region:          cfg.Region,
			Endpoint:        cfg.Endpoint,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			UsePathStyle:    cfg.UsePathStyle,
		}, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// objectKey namespaces a random file name under prefix, keeping the upload's
// extension. Names never collide, so a new upload can't overwrite a kept file.
func objectKey(prefix, name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	return path.Join(strings.Trim(prefix, "/"), uuid.NewString()+ext)
}
