package image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/auditlog"
	"github.com/fproduction/studio-backend/internal/storage"
)

type Handler struct {
	Service     *Service
	Audit       auditlog.Service
	MaxUploadMB int
}

func NewHandler(s *Service, audit auditlog.Service, maxUploadMB int) *Handler {
	return &Handler{Service: s, Audit: audit, MaxUploadMB: maxUploadMB}
}

var validSortFields = map[string]bool{"created_at": true, "updated_at": true}

// List - GET /admin/media?page=&limit=&sortBy=&sortOrder=
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
	if limit < 1 {
		limit = 24
	}
	if limit > 100 {
		limit = 100
	}

	sortBy := c.DefaultQuery("sortBy", "created_at")
	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	images, total, err := h.Service.List(c.Request.Context(), page, limit, sortBy, sortOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy danh sách ảnh."})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"images":  images,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
			"hasMore":    page < totalPages,
			"hasPrev":    page > 1,
		},
	})
}

// ListRecent - GET /debug/images (latest 20, no pagination)
func (h *Handler) ListRecent(c *gin.Context) {
	images, err := h.Service.ListRecent(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tải danh sách ảnh."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}

// PresignUploads - POST /admin/media/presigned-urls
func (h *Handler) PresignUploads(c *gin.Context) {
	var req struct {
		Files []storage.UploadRequest `json:"files"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Không có file nào được chọn"})
		return
	}

	for _, f := range req.Files {
		if !storage.IsValidImageType(f.ContentType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Loại file không hợp lệ: " + f.Filename + ". Chỉ hỗ trợ JPEG, PNG, WebP, GIF, HEIC.",
			})
			return
		}
		if !storage.IsValidFileSize(f.FileSize, h.MaxUploadMB) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "File quá lớn: " + f.Filename + ". Kích thước tối đa là " + strconv.Itoa(h.MaxUploadMB) + "MB.",
			})
			return
		}
	}

	presigned, err := h.Service.PresignUploads(c.Request.Context(), req.Files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tạo URL upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": presigned})
}

// SaveBatch - POST /admin/media/batch
func (h *Handler) SaveBatch(c *gin.Context) {
	var req struct {
		Images []BatchItem `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Không có ảnh nào để lưu"})
		return
	}

	saved, err := h.Service.SaveBatch(c.Request.Context(), req.Images)
	if err != nil {
		var missing *MissingFilesError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":      false,
				"message":      "Không tìm thấy " + strconv.Itoa(len(missing.Keys)) + " file trong S3",
				"missingFiles": missing.Keys,
			})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "IMAGE_BATCH_CREATE", "image", "", map[string]interface{}{"count": len(req.Images), "error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lưu ảnh vào cơ sở dữ liệu"})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "IMAGE_BATCH_CREATE", "image", "", map[string]interface{}{"count": len(saved)}, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"images":  saved,
		"message": "Đã lưu " + strconv.Itoa(len(saved)) + " ảnh thành công",
	})
}

// Update - PATCH /admin/media/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dữ liệu không hợp lệ."})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy ảnh."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "IMAGE_UPDATE", "image", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể cập nhật ảnh."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "IMAGE_UPDATE", "image", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "image": updated, "message": "Đã cập nhật ảnh thành công."})
}

// Delete - DELETE /admin/media/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy ảnh."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "IMAGE_DELETE", "image", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể xóa ảnh."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "IMAGE_DELETE", "image", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Đã xóa ảnh thành công."})
}
