package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fproduction/studio-backend/internal/auditlog"
)

type Handler struct {
	Service *Service
	Audit   auditlog.Service
	MaxAge  int // seconds
	Secure  bool
}

func NewHandler(s *Service, audit auditlog.Service, maxAge int, secure bool) *Handler {
	return &Handler{Service: s, Audit: audit, MaxAge: maxAge, Secure: secure}
}

type loginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RedirectTo string `json:"redirectTo"`
}

// Login - POST /admin/login (public, rate limited)
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vui lòng nhập tên đăng nhập và mật khẩu."})
		return
	}

	if !h.Service.VerifyCredentials(req.Username, req.Password) {
		h.Audit.LogAction(c.Request.Context(), "ADMIN_LOGIN", "session", req.Username, nil, c.ClientIP(), "failure")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Tên đăng nhập hoặc mật khẩu không đúng."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, h.Service.SessionToken(), h.MaxAge, "/", "", h.Secure, true)

	h.Audit.LogAction(c.Request.Context(), "ADMIN_LOGIN", "session", req.Username, nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"redirectTo": SanitizeAdminRedirect(req.RedirectTo),
	})
}

// Logout - DELETE /admin/login
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", h.Secure, true)

	h.Audit.LogAction(c.Request.Context(), "ADMIN_LOGOUT", "session", "", nil, c.ClientIP(), "success")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me - GET /admin/session reports whether the presented session is valid.
func (h *Handler) Me(c *gin.Context) {
	token, err := c.Cookie(CookieName)
	if err != nil || !h.Service.VerifyToken(token) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "authenticated": true})
}
