package middleware

import (
	"net/http"
	"strings"

	"Cookhub/pkg/context"
	"Cookhub/pkg/jwt"
	"Cookhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 必须登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "missing or malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}

// OptionalAuth 携带合法 token 时写入 user_id，否则按游客处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, token); err == nil {
				c.Set(context.CtxUserID, claims.UserID)
				c.Set(context.CtxUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// bearerToken websocket 握手无法设置 header，允许 ?token= 兜底
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if t := c.Query("token"); t != "" {
			return t, true
		}
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
