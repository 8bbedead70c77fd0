package ccapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStoreAppVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultCount":1,"results":[{"version":"1.21.0"}]}`))
	}))
	defer server.Close()

	got := NewStoreAppVersion().WithLookupURL(server.URL).AppVersion(context.Background())
	if got != "1.21.0" {
		t.Fatalf("version = %q, want 1.21.0", got)
	}
}

func TestStoreAppVersionFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) }},
		{"no results", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"resultCount":0,"results":[]}`)) }},
		{"garbage", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`<html>`)) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			got := NewStoreAppVersion().WithLookupURL(server.URL).WithFallback("9.9.9").AppVersion(context.Background())
			if got != "9.9.9" {
				t.Fatalf("version = %q, want fallback", got)
			}
		})
	}
}

func TestLoginRefreshesAppVersion(t *testing.T) {
	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultCount":1,"results":[{"version":"2.0.0"}]}`))
	}))
	defer store.Close()

	f, server := newFakeCloud(t, map[string]http.HandlerFunc{
		"POST /auth/login": reply(200, `{"result":0,"uToken":"T","clientId":"C"}`),
	})

	c := NewClient("u", "p").
		WithBaseURL(server.URL).
		WithAppVersionSource(NewStoreAppVersion().WithLookupURL(store.URL))
	if c.AppVersion() != DefaultAppVersion {
		t.Fatalf("initial version = %q", c.AppVersion())
	}

	if _, err := c.Login(context.Background(), "", ""); err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.AppVersion() != "2.0.0" || f.last().Header.Get("X-APP-VERSION") != "2.0.0" {
		t.Fatalf("version not refreshed: %q", c.AppVersion())
	}
}
