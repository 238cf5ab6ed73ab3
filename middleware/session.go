package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fproduction/studio-backend/internal/auth"
)

// RequireAdmin guards back-office routes. API calls get a JSON 401;
// browser navigations are bounced to the login page with the original
// admin path preserved in redirectTo.
func RequireAdmin(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err == nil && sessions.VerifyToken(token) {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.",
			})
			return
		}

		target := auth.SanitizeAdminRedirect(c.Request.URL.Path)
		c.Redirect(http.StatusTemporaryRedirect, "/admin/login?redirectTo="+url.QueryEscape(target))
		c.Abort()
	}
}
