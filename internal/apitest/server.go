// Package apitest provides a stub ElevenLabs API server for tests. Routes are
// registered with chi patterns, every request is recorded, and unmatched
// routes answer 404 so a wrong path fails loudly.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

// Request is a recorded inbound request
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is a recording stub API
type Server struct {
	*httptest.Server

	t      testing.TB
	router chi.Router

	mu       sync.Mutex
	requests []Request
}

// New starts a stub server that is closed when the test ends
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{t: t, router: chi.NewRouter()}
	s.router.Use(chiMiddleware.Recoverer)
	s.router.Use(s.record)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"detail": "route not stubbed: " + r.Method + " " + r.URL.Path,
		})
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
			"detail": "method not stubbed: " + r.Method + " " + r.URL.Path,
		})
	})

	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Server.Close)
	return s
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// Handle registers a custom handler for method and chi pattern
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	s.router.Method(method, pattern, h)
}

// JSON registers a canned JSON response
func (s *Server) JSON(method, pattern string, status int, body any) {
	s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})
}

// Raw registers a canned response with an explicit content type
func (s *Server) Raw(method, pattern string, status int, contentType string, body []byte) {
	s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
	})
}

// Requests returns every recorded request in arrival order
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Only asserts that exactly one request was received and returns it
func (s *Server) Only() Request {
	s.t.Helper()
	reqs := s.Requests()
	require.Len(s.t, reqs, 1, "expected exactly one request")
	return reqs[0]
}

// JSON decodes the recorded body into a generic value
func (r Request) JSON(t testing.TB) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &v), "body: %s", r.Body)
	return v
}

// Multipart parses the recorded multipart body
func (r Request) Multipart(t testing.TB) *multipart.Form {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(mediaType, "multipart/"), "content type %s", mediaType)

	form, err := multipart.NewReader(bytes.NewReader(r.Body), params["boundary"]).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

// FileContent reads a file part from a parsed multipart form
func FileContent(t testing.TB, form *multipart.Form, field string) (filename string, data []byte) {
	t.Helper()
	files := form.File[field]
	require.Len(t, files, 1, "file part %s", field)

	f, err := files[0].Open()
	require.NoError(t, err)
	defer f.Close()

	data, err = io.ReadAll(f)
	require.NoError(t, err)
	return files[0].Filename, data
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
