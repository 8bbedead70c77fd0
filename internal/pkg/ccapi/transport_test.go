package ccapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPTransportSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-APP-NAME") != "Comfort Cloud" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Forbidden"))
	}))
	defer server.Close()

	tr := NewHTTPTransport()
	req, _ := RequestBuilder{BaseURL: server.URL}.Build(OpListGroups, nil, nil, nil)

	resp, err := tr.Send(context.Background(), req)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.StatusCode != 403 || resp.StatusText != "Forbidden" || string(resp.Body) != "Forbidden" {
		t.Fatalf("response = %d %q %q", resp.StatusCode, resp.StatusText, resp.Body)
	}

	if n := testutil.ToFloat64(tr.metrics.requests.WithLabelValues("list-groups", "403")); n != 1 {
		t.Fatalf("request counter = %v, want 1", n)
	}
}

func TestHTTPTransportUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	tr := NewHTTPTransport()
	req, _ := RequestBuilder{BaseURL: url}.Build(OpLogin, nil, nil, []byte(`{}`))

	_, err := tr.Send(context.Background(), req)
	if !IsTransportError(err) {
		t.Fatalf("err = %v, want transport error", err)
	}
	if n := testutil.ToFloat64(tr.metrics.requests.WithLabelValues("login", "error")); n != 1 {
		t.Fatalf("error counter = %v, want 1", n)
	}
}

func TestSessionNil(t *testing.T) {
	var s *Session
	if s.LoggedIn() || s.AccessToken() != "" || s.ClientID() != "" {
		t.Fatalf("nil session reports state")
	}
}
