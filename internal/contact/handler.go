package contact

import (
	"errors"
	"net/http"
	"strconv"

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

// Submit - POST /contact (public, rate limited)
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vui lòng nhập họ tên và số điện thoại."})
		return
	}

	created, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vui lòng nhập họ tên."})
		case errors.Is(err, ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Số điện thoại không hợp lệ."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể gửi liên hệ. Vui lòng thử lại sau."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"referenceId": created.ReferenceID,
		"message":     "Cảm ơn bạn đã liên hệ! Chúng tôi sẽ phản hồi trong thời gian sớm nhất.",
	})
}

// List - GET /admin/contacts?page=&limit=&status=
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	status := c.Query("status")

	contacts, total, err := h.Service.List(c.Request.Context(), page, limit, status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Trạng thái không hợp lệ."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy danh sách liên hệ."})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": contacts,
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

// Get - GET /admin/contacts/:id
func (h *Handler) Get(c *gin.Context) {
	contact, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy liên hệ."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy liên hệ."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}

// Update - PATCH /admin/contacts/:id
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
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy liên hệ."})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Trạng thái không hợp lệ."})
		default:
			h.Audit.LogAction(c.Request.Context(), "CONTACT_UPDATE", "contact", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể cập nhật liên hệ."})
		}
		return
	}

	h.Audit.LogAction(c.Request.Context(), "CONTACT_UPDATE", "contact", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": updated, "message": "Đã cập nhật liên hệ."})
}
