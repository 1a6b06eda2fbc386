package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/job-portal/internal/config"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// Purpose declares what an upload is for; it selects the destination
// directory, the content-type allow-list and the size ceiling.
type Purpose string

const (
	PurposeResume       Purpose = "resume"
	PurposeProfileImage Purpose = "profile-image"
)

var resumeTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// FileStore saves uploads on local disk and returns stored-path references.
type FileStore struct {
	cfg config.UploadConfig
}

// NewFileStore constructs the store and ensures destination directories exist.
func NewFileStore(cfg config.UploadConfig) (*FileStore, error) {
	for _, dir := range []string{cfg.ResumeDir, cfg.ProfileImageDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return &FileStore{cfg: cfg}, nil
}

// Save validates and stores an uploaded file, returning its path reference.
// Type and size violations surface as upload-rejected errors and leave
// nothing on disk.
func (fs *FileStore) Save(file *multipart.FileHeader, purpose Purpose, ownerID string) (string, error) {
	allowed, dir, maxBytes, label := fs.rules(purpose)
	if allowed == nil {
		return "", apperrors.NewValidationError("unknown upload purpose", nil)
	}

	if file.Size > maxBytes {
		return "", apperrors.NewUploadRejected(
			fmt.Sprintf("%s exceeds the %dMB size limit", label, maxBytes/(1024*1024)),
			map[string]any{"size": file.Size, "max": maxBytes})
	}

	contentType := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	ext, ok := allowed[contentType]
	if !ok {
		return "", apperrors.NewUploadRejected(
			fmt.Sprintf("unsupported %s type %q", label, contentType),
			map[string]any{"content_type": contentType})
	}
	if orig := strings.ToLower(filepath.Ext(file.Filename)); orig != "" {
		ext = orig
	}

	name := fmt.Sprintf("%s_%s_%s%s", label, ownerID, uuid.NewString(), ext)
	dest := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, io.LimitReader(src, maxBytes+1)); err != nil {
		_ = os.Remove(dest)
		return "", err
	}

	return filepath.ToSlash(dest), nil
}

func (fs *FileStore) rules(purpose Purpose) (map[string]string, string, int64, string) {
	switch purpose {
	case PurposeResume:
		return resumeTypes, fs.cfg.ResumeDir, fs.cfg.ResumeMaxBytes, "resume"
	case PurposeProfileImage:
		return imageTypes, fs.cfg.ProfileImageDir, fs.cfg.ImageMaxBytes, "profile"
	default:
		return nil, "", 0, ""
	}
}
