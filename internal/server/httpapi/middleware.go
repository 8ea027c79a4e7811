package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/metrics"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "user_id"
	ctxUserName = "username"
)

func loggingMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"route", routeOf(c),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, routeOf(c), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// routeOf returns the matched route pattern so unmatched paths do not blow
// up label cardinality.
func routeOf(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return "unmatched"
}

// bearerAuth accepts "Authorization: Bearer <token>", verifies the token and
// stores the caller identity in the gin context. Anything else is 401.
func bearerAuth(svc AuthService, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.AuthFailure("invalid_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgUnauthorized))
			return
		}

		claims, err := svc.VerifySession(c.Request.Context(), token)
		if err != nil {
			m.AuthFailure("invalid_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgUnauthorized))
			return
		}

		c.Set(ctxUserID, claims.UserID())
		c.Set(ctxUserName, claims.Name)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// callerID is the identity bearerAuth verified for this request.
func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
