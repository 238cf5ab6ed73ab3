package video_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fproduction/studio-backend/internal/video"
)

func TestIsValidYoutubeURL(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"http://youtu.be/dQw4w9WgXcQ",
	}
	for _, url := range valid {
		assert.True(t, video.IsValidYoutubeURL(url), url)
	}

	invalid := []string{
		"",
		"https://vimeo.com/12345678",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/x",
	}
	for _, url := range invalid {
		assert.False(t, video.IsValidYoutubeURL(url), url)
	}
}
