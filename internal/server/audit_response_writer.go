package server

import (
	"bytes"
	"net/http"
	"strings"
)

// maxCapturedBody bounds how much of a response the audit log keeps.
const maxCapturedBody = 4 << 10

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
	buffer     bytes.Buffer
}

func newResponseWriterWrapper(w http.ResponseWriter) *responseWriterWrapper {
	return &responseWriterWrapper{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write captures JSON bodies only; images and metrics pass straight through.
func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") && w.buffer.Len() < maxCapturedBody {
		room := maxCapturedBody - w.buffer.Len()
		if len(b) < room {
			room = len(b)
		}
		w.buffer.Write(b[:room])
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriterWrapper) GetStatusCode() int {
	return w.statusCode
}

func (w *responseWriterWrapper) GetBody() []byte {
	return w.buffer.Bytes()
}
