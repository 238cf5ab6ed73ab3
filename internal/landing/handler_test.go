package landing_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/landing"
)

func setupRouter(svc *landing.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/landing/images", landing.NewHandler(svc).Images)
	return r
}

func TestImagesUnknownFilterReturns400WithAvailableFilters(t *testing.T) {
	repo := new(MockRepository)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/landing/images?filter=BOGUS", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success          bool     `json:"success"`
		AvailableFilters []string `json:"availableFilters"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.AvailableFilters)
	assert.Contains(t, body.AvailableFilters, "ẢNH EVENT")
}

func TestImagesMissingFilterReturns400(t *testing.T) {
	repo := new(MockRepository)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/landing/images", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImagesSuccessPayload(t *testing.T) {
	_, svc := orderedFixture()
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/landing/images?filter=%E1%BA%A2NH%20EVENT&page=1&limit=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Images  []struct {
			ID    string `json:"id"`
			URL   string `json:"url"`
			Event struct {
				Title string `json:"title"`
			} `json:"event"`
		} `json:"images"`
		Pagination struct {
			Total   int  `json:"total"`
			HasMore bool `json:"hasMore"`
		} `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Images, 2)
	assert.Equal(t, "i5", body.Images[0].ID)
	assert.Equal(t, 4, body.Pagination.Total)
	assert.True(t, body.Pagination.HasMore)
}

func TestImagesMissingServiceCarriesMessage(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindServiceByName", mock.Anything, "Chụp Ảnh Sự Kiện").
		Return(nil, gorm.ErrRecordNotFound)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/landing/images?filterType=%E1%BA%A2NH%20EVENT", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Images  []json.RawMessage `json:"images"`
		Message string            `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Images)
	assert.Equal(t, `Không tìm thấy service "Chụp Ảnh Sự Kiện"`, body.Message)
}
