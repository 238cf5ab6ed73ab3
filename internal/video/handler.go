package video

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/auditlog"
)

type Handler struct {
	Service *Service
	Audit   auditlog.Service
}

func NewHandler(s *Service, audit auditlog.Service) *Handler {
	return &Handler{Service: s, Audit: audit}
}

// List - GET /admin/media/videos
func (h *Handler) List(c *gin.Context) {
	videos, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy danh sách video."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "videos": videos})
}

// Create - POST /admin/media/videos
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vui lòng nhập link YouTube."})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidYoutubeURL) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Link YouTube không hợp lệ."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "VIDEO_CREATE", "video", "", map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tạo video."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "VIDEO_CREATE", "video", created.ID, nil, c.ClientIP(), "success")
	c.JSON(http.StatusCreated, gin.H{"success": true, "video": created, "message": "Đã thêm video thành công."})
}

// Update - PATCH /admin/media/videos/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dữ liệu không hợp lệ."})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy video."})
		case errors.Is(err, ErrInvalidYoutubeURL):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Link YouTube không hợp lệ."})
		default:
			h.Audit.LogAction(c.Request.Context(), "VIDEO_UPDATE", "video", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể cập nhật video."})
		}
		return
	}

	h.Audit.LogAction(c.Request.Context(), "VIDEO_UPDATE", "video", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "video": updated, "message": "Đã cập nhật video thành công."})
}

// Delete - DELETE /admin/media/videos/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy video."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "VIDEO_DELETE", "video", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể xóa video."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "VIDEO_DELETE", "video", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Đã xóa video thành công."})
}
