package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/sicproject/backend/internal/pkg/logger"
)

// LocalStorage stores upload blobs on the local filesystem. Files keep
// the original client filename (directory components stripped), so a
// second upload with the same name overwrites the first.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating
// the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the storage root.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFile persists an uploaded file under its original filename and
// returns the stored name.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file header")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Keep the client's name but never its directory components.
	name := filepath.Base(filepath.ToSlash(fileHeader.Filename))
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("invalid filename %q", fileHeader.Filename)
	}

	dstPath := filepath.Join(ls.basePath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", name).Msg("File saved")
	return name, nil
}

// List returns the names of every stored blob, directories excluded.
func (ls *LocalStorage) List() ([]string, error) {
	entries, err := os.ReadDir(ls.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Resolve maps a caller-supplied relative path to a full path inside the
// storage root. Paths escaping the root are rejected.
func (ls *LocalStorage) Resolve(relPath string) (string, error) {
	base, err := filepath.Abs(ls.basePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage root: %w", err)
	}

	target := filepath.Clean(filepath.Join(base, filepath.FromSlash(relPath)))
	if target != base && !strings.HasPrefix(target, base+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes storage root", relPath)
	}

	return target, nil
}
