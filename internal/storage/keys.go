package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/heic": true,
	"image/heif": true,
}

// GenerateKey builds a unique object key of the form
// images/<year>/<month>/<uuid>.<ext>.
func GenerateKey(filename string) string {
	now := time.Now()
	ext := "jpg"
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		ext = strings.ToLower(filename[idx+1:])
	}
	return fmt.Sprintf("images/%d/%02d/%s.%s", now.Year(), now.Month(), uuid.NewString(), ext)
}

// IsValidImageType checks the upload content type against the allowed set.
func IsValidImageType(contentType string) bool {
	return allowedImageTypes[strings.ToLower(contentType)]
}

// IsValidFileSize bounds uploads to maxMB megabytes.
func IsValidFileSize(size int64, maxMB int) bool {
	return size > 0 && size <= int64(maxMB)*1024*1024
}
