package middleware

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLoggerMiddleware dumps each request's line, headers and body. Only
// wired up in debug mode.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logrus.Tracef("%s %s", c.Request.Method, c.Request.URL.Path)
		logrus.Tracef("Header: %v", c.Request.Header)

		var buf bytes.Buffer
		tee := io.TeeReader(c.Request.Body, &buf)
		body, _ := ioutil.ReadAll(tee)
		c.Request.Body = ioutil.NopCloser(&buf)
		if len(body) > 0 {
			logrus.Tracef("Body: %s", string(body))
		}

		c.Next()
	}
}
