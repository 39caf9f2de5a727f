package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/a2sh3r/aitrade/internal/logger"
	"go.uber.org/zap"
)

// maxInflatedBody caps a decompressed request body. Every endpoint takes a small JSON document.
const maxInflatedBody = 1 << 20

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// gzipResponseWriter decides on the first write whether the payload is worth compressing.
// JSON and text are, anything else passes through untouched.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz      *gzip.Writer
	decided bool
}

func (w *gzipResponseWriter) decide(sample []byte) {
	if w.decided {
		return
	}
	w.decided = true

	h := w.Header()
	if h.Get("Content-Encoding") != "" {
		return
	}
	contentType := h.Get("Content-Type")
	if contentType == "" && len(sample) > 0 {
		contentType = http.DetectContentType(sample)
		h.Set("Content-Type", contentType)
	}
	if !compressible(contentType) {
		return
	}

	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")
	w.gz = gzipWriters.Get().(*gzip.Writer)
	w.gz.Reset(w.ResponseWriter)
}

func (w *gzipResponseWriter) WriteHeader(code int) {
	if code != http.StatusNoContent && code != http.StatusNotModified {
		w.decide(nil)
	} else {
		w.decided = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	w.decide(b)
	if w.gz == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.gz.Write(b)
}

func (w *gzipResponseWriter) close() {
	if w.gz == nil {
		return
	}
	if err := w.gz.Close(); err != nil {
		logger.Log.Error("failed to close gzip writer", zap.Error(err))
	}
	w.gz.Reset(io.Discard)
	gzipWriters.Put(w.gz)
	w.gz = nil
}

// WithGzip inflates gzip request bodies and compresses JSON and text responses for clients
// that accept it. It must not wrap websocket routes, the wrapped writer cannot be hijacked.
func WithGzip() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") == "gzip" {
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					http.Error(w, "invalid gzip body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := gz.Close(); err != nil {
						logger.Log.Warn("failed to close gzip body", zap.Error(err))
					}
				}()

				r.Body = http.MaxBytesReader(w, io.NopCloser(gz), maxInflatedBody)
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			w.Header().Add("Vary", "Accept-Encoding")
			if !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer gw.close()
			next.ServeHTTP(gw, r)
		})
	}
}

func acceptsGzip(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(name, "gzip") {
			return true
		}
	}
	return false
}

func compressible(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))
	return mediaType == "application/json" || strings.HasPrefix(mediaType, "text/")
}
