package services

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"repuestos-web/utils"
)

// ErrBadImageType rejects uploads whose extension is outside the allow-list.
var ErrBadImageType = errors.New("image format not allowed")

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ImageStore persists uploaded part images on local disk. Files are named
// after the sanitized vendor code, so a second upload whose code sanitizes
// to the same token (same extension) overwrites the first. No decoding or
// content sniffing happens here, only the extension check.
type ImageStore struct {
	Dir    string
	Logger *zap.Logger
}

func NewImageStore(dir string, logger *zap.Logger) *ImageStore {
	return &ImageStore{Dir: dir, Logger: logger}
}

// Save validates the filename extension, writes the content under the images
// directory and returns the relative path stored on the part record. The
// extension is checked before anything touches disk.
func (s *ImageStore) Save(code, filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", ErrBadImageType
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	name := utils.SafeCodeToken(code) + ext
	if err := os.WriteFile(filepath.Join(s.Dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("save image %s: %w", name, err)
	}

	s.Logger.Info("image saved", zap.String("file", name))
	return path.Join("images", name), nil
}
