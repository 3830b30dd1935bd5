package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
)

// LoggerConfig controls what the request logger records.
type LoggerConfig struct {
	LogRequestBody  bool
	LogResponseBody bool  // error responses are always logged
	MaxBodySize     int64 // bytes
	SkipPaths       []string
	// SensitiveFields are JSON keys whose values are masked. Matching is by substring.
	SensitiveFields []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogRequestBody:  true,
		LogResponseBody: false,
		MaxBodySize:     2048,
		SkipPaths:       []string{"/health", "/metrics"},
		SensitiveFields: []string{"password", "token", "secret", "code", "contact", "name", "email"},
	}
}

func Logger(log *logger.Logger) gin.HandlerFunc {
	return LoggerWithConfig(log, DefaultLoggerConfig())
}

func LoggerWithConfig(log *logger.Logger, config LoggerConfig) gin.HandlerFunc {
	if log == nil {
		log = logger.Default()
	}
	log = log.Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[body too large to log]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = sanitizeBody(bodyBytes, c.ContentType(), config.SensitiveFields)
				}
			}
		}

		writer := &limitedResponseWriter{
			ResponseWriter: c.Writer,
			maxSize:        config.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		line := fmt.Sprintf("%s %s -> %d in %v (%s) ip=%s",
			c.Request.Method, path, status, time.Since(start).Round(time.Microsecond), formatSize(writer.size), c.ClientIP())
		if q := c.Request.URL.RawQuery; q != "" {
			line += " query=" + truncateString(q, 100)
		}
		if p, ok := PrincipalFrom(c); ok {
			line += " admin=" + p.Subject
		}
		if requestBody != "" {
			line += " body=" + requestBody
		}
		if (config.LogResponseBody || status >= 400) && writer.body.Len() > 0 {
			line += " response=" + truncateString(writer.body.String(), 300)
		}

		switch {
		case status >= 500:
			log.Error("%s", line)
		case status >= 400:
			log.Warn("%s", line)
		default:
			log.Info("%s", line)
		}
	}
}

// limitedResponseWriter captures at most maxSize bytes of the response for logging.
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)

	if w.size+int64(n) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)

	return n, err
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

// sanitizeBody returns a loggable rendering of a request body. Only JSON bodies
// are logged; their sensitive fields are masked.
func sanitizeBody(body []byte, contentType string, sensitive []string) string {
	if len(body) == 0 {
		return ""
	}
	if !strings.Contains(contentType, "application/json") {
		return fmt.Sprintf("[%s, %s]", contentType, formatSize(int64(len(body))))
	}

	var data interface{}
	if json.Unmarshal(body, &data) != nil {
		return "[invalid json]"
	}
	out, err := json.Marshal(hideSensitiveFields(data, sensitive))
	if err != nil {
		return "[unprintable json]"
	}
	return truncateString(string(out), 300)
}

func hideSensitiveFields(data interface{}, sensitive []string) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key), sensitive) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value, sensitive)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item, sensitive)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string, sensitive []string) bool {
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
