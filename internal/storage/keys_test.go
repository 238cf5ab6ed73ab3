package storage_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fproduction/studio-backend/internal/storage"
)

func TestGenerateKeyFormat(t *testing.T) {
	now := time.Now()
	pattern := regexp.MustCompile(fmt.Sprintf(
		`^images/%d/%02d/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.jpg$`,
		now.Year(), now.Month(),
	))

	key := storage.GenerateKey("wedding-photo.JPG")
	assert.Regexp(t, pattern, key)
}

func TestGenerateKeyLowercasesExtension(t *testing.T) {
	assert.Regexp(t, `\.heic$`, storage.GenerateKey("IMG_0042.HEIC"))
	assert.Regexp(t, `\.png$`, storage.GenerateKey("shot.PNG"))
}

func TestGenerateKeyDefaultsToJpg(t *testing.T) {
	assert.Regexp(t, `\.jpg$`, storage.GenerateKey("no-extension"))
	assert.Regexp(t, `\.jpg$`, storage.GenerateKey("trailing-dot."))
}

func TestGenerateKeyIsUnique(t *testing.T) {
	assert.NotEqual(t, storage.GenerateKey("a.jpg"), storage.GenerateKey("a.jpg"))
}

func TestIsValidImageType(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/heic", "image/heif", "IMAGE/JPEG"} {
		assert.True(t, storage.IsValidImageType(ct), ct)
	}
	for _, ct := range []string{"image/svg+xml", "application/pdf", "video/mp4", ""} {
		assert.False(t, storage.IsValidImageType(ct), ct)
	}
}

func TestIsValidFileSize(t *testing.T) {
	max := 50
	assert.True(t, storage.IsValidFileSize(1, max))
	assert.True(t, storage.IsValidFileSize(50*1024*1024, max))
	assert.False(t, storage.IsValidFileSize(50*1024*1024+1, max))
	assert.False(t, storage.IsValidFileSize(0, max))
	assert.False(t, storage.IsValidFileSize(-1, max))
}

func TestPublicURLPrefersCDN(t *testing.T) {
	key := "images/2025/06/abc.jpg"

	assert.Equal(t,
		"https://cdn.example.com/images/2025/06/abc.jpg",
		storage.PublicURL("https://cdn.example.com", "bucket", "ap-southeast-1", key))

	// trailing slash on the CDN domain is tolerated
	assert.Equal(t,
		"https://cdn.example.com/images/2025/06/abc.jpg",
		storage.PublicURL("https://cdn.example.com/", "bucket", "ap-southeast-1", key))
}

func TestPublicURLFallsBackToS3(t *testing.T) {
	assert.Equal(t,
		"https://studio-media.s3.ap-southeast-1.amazonaws.com/images/2025/06/abc.jpg",
		storage.PublicURL("", "studio-media", "ap-southeast-1", "images/2025/06/abc.jpg"))
}
