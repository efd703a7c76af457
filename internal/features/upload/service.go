package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-reporthub/internal/config"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrFileTooLarge   = errors.New("file exceeds the maximum upload size")
	ErrTypeNotAllowed = errors.New("file type is not allowed")
	ErrFileNotFound   = errors.New("file not found")
	ErrBadFileName    = errors.New("invalid file name")
)

type UploadService interface {
	Store(ctx context.Context, originalName, contentType string, size int64, src io.Reader, userID string) (*StoredFile, error)
	Resolve(ctx context.Context, storedName string) (string, *StoredFile, error)
}

type UploadServiceImpl struct {
	Repo      UploadRepository
	UploadDir string
}

func NewUploadService(repo UploadRepository, cfg *config.Config) UploadService {
	return &UploadServiceImpl{
		Repo:      repo,
		UploadDir: cfg.UploadDir,
	}
}

// Store validates, writes the file under an opaque generated name, and
// records it. The generated name keeps the original extension so file
// servers can infer the content type.
func (s *UploadServiceImpl) Store(ctx context.Context, originalName, contentType string, size int64, src io.Reader, userID string) (*StoredFile, error) {
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if !AllowedContentType(contentType) {
		return nil, ErrTypeNotAllowed
	}

	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return nil, err
	}

	dst, err := os.Create(filepath.Join(s.UploadDir, storedName))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	file := &StoredFile{
		ID:           primitive.NewObjectID(),
		StoredName:   storedName,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         size,
		UploadedBy:   userID,
		UploadedAt:   time.Now(),
	}

	if err := s.Repo.Create(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// Resolve maps a stored name back to its disk path and metadata. Names
// containing path separators are rejected outright.
func (s *UploadServiceImpl) Resolve(ctx context.Context, storedName string) (string, *StoredFile, error) {
	if storedName == "" || storedName != filepath.Base(storedName) {
		return "", nil, ErrBadFileName
	}

	file, err := s.Repo.FindByStoredName(ctx, storedName)
	if err != nil {
		return "", nil, err
	}
	if file == nil {
		return "", nil, ErrFileNotFound
	}

	path := filepath.Join(s.UploadDir, storedName)
	if _, err := os.Stat(path); err != nil {
		return "", nil, ErrFileNotFound
	}
	return path, file, nil
}
