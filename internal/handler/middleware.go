package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"
	"token-arena/internal/auth"
	"token-arena/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := redactQuery(c.Request.URL)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)
		uid, _ := c.Get(ctxUserID)
		userID, _ := uid.(int64)

		log.Info().
			Str("request_id", requestID).
			Int64("user_id", userID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// redactQuery masks credentials passed in the query string before logging
func redactQuery(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "[unparseable]"
	}
	if _, ok := values["access_token"]; !ok {
		return u.RawQuery
	}
	values.Set("access_token", "REDACTED")
	return values.Encode()
}

// JWTAuth identifies the caller from a bearer token. Websocket clients that
// cannot set headers may pass the token as access_token.
func JWTAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := c.Query("access_token")
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tok = strings.TrimPrefix(h, "Bearer ")
		}
		if tok == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := verifier.ParseValidate(tok)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, _ := c.Get(ctxRole)
		role, _ := v.(string)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Error: "You are not allowed to perform this action",
				Code:  "FORBIDDEN",
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
		Error: "Authentication required",
		Code:  "UNAUTHORIZED",
	})
}

// currentUserID returns the authenticated caller set by JWTAuth
func currentUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, model.ErrUnauthorized
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, model.ErrUnauthorized
	}
	return id, nil
}
