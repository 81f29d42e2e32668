package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"index.html":        {Data: []byte("<!doctype html><title>userdesk</title>")},
		"app.js":            {Data: []byte("console.log('app');")},
		"assets/styles.css": {Data: []byte("body{margin:0}")},
	}
}

func TestSPA(t *testing.T) {
	spa, err := NewSPA(testBundle())
	if err != nil {
		t.Fatalf("NewSPA: %v", err)
	}

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"root serves index", http.MethodGet, "/", http.StatusOK, "<title>userdesk</title>"},
		{"client route falls back", http.MethodGet, "/dashboard", http.StatusOK, "<title>userdesk</title>"},
		{"nested client route", http.MethodGet, "/users/3/edit", http.StatusOK, "<title>userdesk</title>"},
		{"index by name", http.MethodGet, "/index.html", http.StatusOK, "<title>userdesk</title>"},
		{"real file", http.MethodGet, "/app.js", http.StatusOK, "console.log('app');"},
		{"nested file", http.MethodGet, "/assets/styles.css", http.StatusOK, "body{margin:0}"},
		{"directory falls back", http.MethodGet, "/assets", http.StatusOK, "<title>userdesk</title>"},
		{"unknown api path", http.MethodGet, "/api/nope", http.StatusNotFound, `"error":"Not found"`},
		{"post not allowed", http.MethodPost, "/dashboard", http.StatusMethodNotAllowed, "Method not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			spa.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSPA_IndexContentType(t *testing.T) {
	spa, err := NewSPA(testBundle())
	if err != nil {
		t.Fatalf("NewSPA: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	spa.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html, got %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("expected no-cache, got %q", cc)
	}
}

func TestNewSPA_MissingIndex(t *testing.T) {
	if _, err := NewSPA(fstest.MapFS{"app.js": {Data: []byte("x")}}); err == nil {
		t.Error("expected error for a bundle without index.html")
	}
}
