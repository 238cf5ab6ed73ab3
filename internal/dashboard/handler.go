package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// Summary - GET /admin/dashboard
func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.Service.Summarize(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tải số liệu tổng quan."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": sum})
}
