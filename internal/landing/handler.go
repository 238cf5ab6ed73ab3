package landing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// Images - GET /landing/images?filterType=|serviceName=&page=&limit= (public)
func (h *Handler) Images(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	q := Query{
		FilterType:  c.Query("filterType"),
		ServiceName: c.Query("serviceName"),
		Page:        page,
		Limit:       limit,
	}
	if q.FilterType == "" {
		// older frontend builds send ?filter=
		q.FilterType = c.Query("filter")
	}

	result, err := h.Service.Resolve(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrUnknownFilter) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":          false,
				"message":          "Bộ lọc không hợp lệ.",
				"availableFilters": h.Service.Filters(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tải ảnh."})
		return
	}

	resp := gin.H{
		"success": true,
		"images":  result.Items,
		"pagination": gin.H{
			"page":    result.Page,
			"limit":   result.Limit,
			"total":   result.Total,
			"hasMore": result.HasMore,
		},
	}
	if result.Service != nil {
		resp["service"] = result.Service
	}
	if result.Note != "" {
		resp["message"] = result.Note
	}
	c.JSON(http.StatusOK, resp)
}
