package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is the remote object store: it takes a locally staged file and
// returns the public URL the platform serves it from.
type Store interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// UploadStaged uploads a staged temp file and removes it afterwards, on both
// the success and the failure path, so no orphaned temp files survive a
// request.
func UploadStaged(ctx context.Context, store Store, localPath string) (string, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove staged upload",
				slog.String("path", localPath),
				slog.String("error", err.Error()),
			)
		}
	}()

	url, err := store.Upload(ctx, localPath)
	if err != nil {
		return "", err
	}
	return url, nil
}

// StageFile writes an uploaded multipart file into dir and returns the staged
// path. The caller owns the file from here; UploadStaged removes it.
func StageFile(fh *multipart.FileHeader, dir string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("no file provided")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			slog.Warn("failed to close uploaded file", slog.String("error", closeErr.Error()))
		}
	}()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create staging dir: %w", err)
	}

	staged := filepath.Join(dir, uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(staged)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(staged)
		return "", fmt.Errorf("failed to close staged file: %w", err)
	}

	return staged, nil
}
