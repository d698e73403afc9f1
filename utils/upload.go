package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ImageExt = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

var (
	ErrEkstensi   = errors.New("tipe file tidak didukung")
	ErrFileKosong = errors.New("file tidak ditemukan")
)

// SaveUpload stores the multipart file in field under dir with a random
// name and returns the public path below /uploads.
func SaveUpload(c *fiber.Ctx, field, dir string, allowed []string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", ErrFileKosong
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	ok := false
	for _, a := range allowed {
		if ext == a {
			ok = true
			break
		}
	}
	if !ok {
		return "", ErrEkstensi
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// RemoveUpload deletes a file previously returned by SaveUpload. Paths
// outside /uploads are ignored.
func RemoveUpload(dir, publicPath string) {
	if !strings.HasPrefix(publicPath, "/uploads/") {
		return
	}
	_ = os.Remove(filepath.Join(dir, filepath.Base(publicPath)))
}
