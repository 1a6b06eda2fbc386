package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/spec-kit/job-portal/internal/config"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

func testStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	store, err := NewFileStore(config.UploadConfig{
		ResumeDir:       dir + "/resumes",
		ProfileImageDir: dir + "/profiles",
		ResumeMaxBytes:  1024,
		ImageMaxBytes:   512,
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func fileHeader(t *testing.T, name, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(10 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func uploadCode(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
	return domainErr.Code
}

func TestSaveResume(t *testing.T) {
	store := testStore(t)
	header := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	path, err := store.Save(header, PurposeResume, "user-1")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.Contains(path, "resume_user-1_") || !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := testStore(t)
	header := fileHeader(t, "cv.pdf", "application/pdf", bytes.Repeat([]byte("a"), 2048))

	_, err := store.Save(header, PurposeResume, "user-1")
	if code := uploadCode(t, err); code != "UPLOAD_REJECTED" {
		t.Fatalf("code = %q, want UPLOAD_REJECTED", code)
	}
}

func TestSaveRejectsWrongContentType(t *testing.T) {
	store := testStore(t)

	header := fileHeader(t, "cv.exe", "application/octet-stream", []byte("MZ"))
	_, err := store.Save(header, PurposeResume, "user-1")
	if code := uploadCode(t, err); code != "UPLOAD_REJECTED" {
		t.Fatalf("resume code = %q, want UPLOAD_REJECTED", code)
	}

	header = fileHeader(t, "photo.pdf", "application/pdf", []byte("%PDF"))
	_, err = store.Save(header, PurposeProfileImage, "user-1")
	if code := uploadCode(t, err); code != "UPLOAD_REJECTED" {
		t.Fatalf("image code = %q, want UPLOAD_REJECTED", code)
	}
}

func TestSaveProfileImage(t *testing.T) {
	store := testStore(t)
	header := fileHeader(t, "me.png", "image/png", []byte("\x89PNG fake"))

	path, err := store.Save(header, PurposeProfileImage, "user-2")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.Contains(path, "profile_user-2_") || !strings.HasSuffix(path, ".png") {
		t.Fatalf("path = %q", path)
	}
}

func TestSaveUnknownPurpose(t *testing.T) {
	store := testStore(t)
	header := fileHeader(t, "x.pdf", "application/pdf", []byte("x"))

	_, err := store.Save(header, Purpose("attachment"), "user-1")
	if code := uploadCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", code)
	}
}
