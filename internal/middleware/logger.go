package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"academy/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ErrorLogger recovers panics into a 500 response and logs every request
// that ends in a server error or carries gin errors.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				msg := fmt.Sprint(recovered)
				logFailure(c, start, "panic", msg)
				log.Printf("panic_stack request_id=%s\n%s", requestID(c), debug.Stack())

				response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error", msg)
				c.Abort()
				return
			}

			for _, e := range c.Errors {
				logFailure(c, start, "gin_error", e.Error())
			}
			if len(c.Errors) == 0 && c.Writer.Status() >= http.StatusInternalServerError {
				logFailure(c, start, "server_error", http.StatusText(c.Writer.Status()))
			}
		}()

		c.Next()
	}
}

func logFailure(c *gin.Context, start time.Time, kind, msg string) {
	admin := "-"
	if s := SessionFrom(c); s != nil {
		admin = s.Username
	}

	log.Printf("request_failed kind=%s status=%d method=%s path=%s admin=%s client_ip=%s request_id=%s latency=%s error=%q",
		kind,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		admin,
		c.ClientIP(),
		requestID(c),
		time.Since(start),
		msg,
	)
}

func requestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return "-"
}
