package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/auditlog"
)

type Handler struct {
	Catalog *Catalog
	Audit   auditlog.Service
}

func NewHandler(c *Catalog, audit auditlog.Service) *Handler {
	return &Handler{Catalog: c, Audit: audit}
}

// List - GET /admin/services
func (h *Handler) List(c *gin.Context) {
	services, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy danh sách dịch vụ."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "services": services})
}

// Get - GET /admin/services/:id
func (h *Handler) Get(c *gin.Context) {
	s, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy dịch vụ."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể lấy dịch vụ."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": s})
}

// Create - POST /admin/services
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vui lòng nhập tên dịch vụ."})
		return
	}

	created, err := h.Catalog.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Tên dịch vụ đã tồn tại."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "SERVICE_CREATE", "service", "", map[string]interface{}{"name": req.Name, "error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tạo dịch vụ."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "SERVICE_CREATE", "service", created.ID, map[string]interface{}{"name": created.Name}, c.ClientIP(), "success")
	c.JSON(http.StatusCreated, gin.H{"success": true, "service": created, "message": "Đã tạo dịch vụ thành công."})
}

// Update - PATCH /admin/services/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dữ liệu không hợp lệ."})
		return
	}

	updated, err := h.Catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy dịch vụ."})
		case errors.Is(err, ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Tên dịch vụ đã tồn tại."})
		default:
			h.Audit.LogAction(c.Request.Context(), "SERVICE_UPDATE", "service", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể cập nhật dịch vụ."})
		}
		return
	}

	h.Audit.LogAction(c.Request.Context(), "SERVICE_UPDATE", "service", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "service": updated, "message": "Đã cập nhật dịch vụ thành công."})
}

// Delete - DELETE /admin/services/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.Catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Không tìm thấy dịch vụ."})
			return
		}
		h.Audit.LogAction(c.Request.Context(), "SERVICE_DELETE", "service", id, map[string]interface{}{"error": err.Error()}, c.ClientIP(), "failure")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể xóa dịch vụ."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "SERVICE_DELETE", "service", id, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Đã xóa dịch vụ thành công."})
}
