package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"techhive-users/pkg/logger"

	"github.com/gin-gonic/gin"
)

// bodyCapture holds the response body back until the handler has finished so
// it can be logged, then the bytes go out unchanged.
type bodyCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// RequestLogger logs the request body before the handler runs and the final
// status and body after it. The request body is rewound for the handler.
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := pick(l)
		ctx := c.Request.Context()

		requestBody, err := peekBody(c.Request)
		if err != nil {
			_ = c.Error(fmt.Errorf("read request body: %w", err))
			c.Abort()
			return
		}
		if log != nil {
			log.InfoCtx(ctx, "Request: %s %s Body: %s", c.Request.Method, c.Request.URL.Path, requestBody)
		}

		original := c.Writer
		capture := &bodyCapture{ResponseWriter: original}
		c.Writer = capture
		// on panic the buffered bytes are dropped and the boundary answers
		defer func() { c.Writer = original }()

		c.Next()

		c.Writer = original
		// nothing written and an error pending: the boundary answers, not this status
		if len(c.Errors) > 0 && capture.body.Len() == 0 && !original.Written() {
			return
		}
		if log != nil {
			log.InfoCtx(ctx, "Response: %d Body: %s", original.Status(), capture.body.String())
		}
		if capture.body.Len() > 0 {
			if _, err := original.Write(capture.body.Bytes()); err != nil && log != nil {
				log.ErrorCtx(ctx, "write response body: %s", err)
			}
		}
	}
}

func peekBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	data, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(data))
	return data, err
}
