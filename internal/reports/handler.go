package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fproduction/studio-backend/internal/auditlog"
	"github.com/fproduction/studio-backend/internal/contact"
	"github.com/fproduction/studio-backend/internal/event"
)

// exportLimit caps how many rows an export pulls in one request.
const exportLimit = 5000

type Handler struct {
	Contacts contact.Repository
	Events   event.Repository
	Audit    auditlog.Service
}

func NewHandler(contacts contact.Repository, events event.Repository, audit auditlog.Service) *Handler {
	return &Handler{Contacts: contacts, Events: events, Audit: audit}
}

// ExportContacts - GET /admin/reports/contacts?format=csv|xlsx|pdf&status=
func (h *Handler) ExportContacts(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !contact.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Trạng thái không hợp lệ."})
		return
	}

	contacts, err := h.Contacts.ListAll(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tải dữ liệu liên hệ."})
		return
	}
	if len(contacts) > exportLimit {
		contacts = contacts[:exportLimit]
	}

	format := c.DefaultQuery("format", "csv")
	var (
		data        []byte
		contentType string
		ext         string
	)
	switch format {
	case "csv":
		data, err = ContactsCSV(contacts)
		contentType, ext = "text/csv", "csv"
	case "xlsx", "excel":
		data, err = ContactsXLSX(contacts)
		contentType, ext = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
	case "pdf":
		data, err = ContactsPDF(contacts)
		contentType, ext = "application/pdf", "pdf"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Định dạng không hợp lệ. Hỗ trợ: csv, xlsx, pdf."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tạo báo cáo."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "REPORT_EXPORT", "contact", "", map[string]interface{}{"format": format, "rows": len(contacts)}, c.ClientIP(), "success")
	filename := fmt.Sprintf("contacts-%s.%s", time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// ExportEvents - GET /admin/reports/events?format=csv|xlsx|pdf
func (h *Handler) ExportEvents(c *gin.Context) {
	rows, _, err := h.Events.ListPaginated(c.Request.Context(), 1, exportLimit, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tải dữ liệu sự kiện."})
		return
	}
	events := make([]event.Response, 0, len(rows))
	for _, e := range rows {
		events = append(events, event.Response{Event: e, ImageCount: len(e.Images), VideoCount: len(e.Videos)})
	}

	format := c.DefaultQuery("format", "csv")
	var (
		data        []byte
		contentType string
		ext         string
	)
	switch format {
	case "csv":
		data, err = EventsCSV(events)
		contentType, ext = "text/csv", "csv"
	case "xlsx", "excel":
		data, err = EventsXLSX(events)
		contentType, ext = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
	case "pdf":
		data, err = EventsPDF(events)
		contentType, ext = "application/pdf", "pdf"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Định dạng không hợp lệ. Hỗ trợ: csv, xlsx, pdf."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Không thể tạo báo cáo."})
		return
	}

	h.Audit.LogAction(c.Request.Context(), "REPORT_EXPORT", "event", "", map[string]interface{}{"format": format, "rows": len(events)}, c.ClientIP(), "success")
	filename := fmt.Sprintf("events-%s.%s", time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
