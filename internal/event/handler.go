package event

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

// List - GET /admin/events?page=&limit=&search=
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
	search := c.Query("search")

	events, total, err := h.Service.List(c.Request.Context(), page, limit, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy danh sách sự kiện."})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
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

// Get - GET /admin/events/:id
func (h *Handler) Get(c *gin.Context) {
	e, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy sự kiện."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy sự kiện."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": e})
}

// Create - POST /admin/events
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vui lòng nhập tiêu đề sự kiện."})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vui lòng nhập tiêu đề sự kiện."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "EVENT_CREATE", "event", "", map[string]interface{}{"title": req.Title, "error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tạo sự kiện."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "EVENT_CREATE", "event", created.ID, map[string]interface{}{"title": created.Title}, c.ClientIP(), "success")
	c.JSON(http.StatusCreated, gin.H{"success": true, "event": created, "message": "Đã tạo sự kiện thành công."})
}

// Update - PATCH /admin/events/:id
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
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy sự kiện."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "EVENT_UPDATE", "event", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể cập nhật sự kiện."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "EVENT_UPDATE", "event", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "event": updated, "message": "Đã cập nhật sự kiện thành công."})
}

// Delete - DELETE /admin/events/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy sự kiện."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "EVENT_DELETE", "event", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể xóa sự kiện."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "EVENT_DELETE", "event", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Đã xóa sự kiện thành công."})
}
