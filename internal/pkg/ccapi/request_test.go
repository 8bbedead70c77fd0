package ccapi

import (
	"net/http"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 8, 5, 9, 0, time.UTC)
}

func TestBuildHeaders(t *testing.T) {
	b := RequestBuilder{BaseURL: "https://example.test/", AppVersion: "1.20.0", Now: fixedClock}

	req, err := b.Build(OpListGroups, NewSession(), nil, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	want := map[string]string{
		"Content-Type":    "application/json; charset=utf-8",
		"Accept":          "application/json; charset=utf-8",
		"X-APP-TYPE":      "1",
		"X-APP-VERSION":   "1.20.0",
		"X-APP-NAME":      "Comfort Cloud",
		"X-APP-TIMESTAMP": "2024-03-01 08:05:09",
		"X-CFC-API-KEY":   "0",
		"User-Agent":      "G-RAC",
	}
	for k, v := range want {
		if got := req.Header.Get(k); got != v {
			t.Errorf("header %s = %q, want %q", k, got, v)
		}
	}

	if _, ok := req.Header[http.CanonicalHeaderKey("X-User-Authorization")]; ok {
		t.Errorf("authorization header sent without a session")
	}
	if req.Method != http.MethodGet || req.URL != "https://example.test/device/group" {
		t.Errorf("request = %s %s", req.Method, req.URL)
	}
}

func TestBuildWithSession(t *testing.T) {
	b := RequestBuilder{BaseURL: "https://example.test", Now: fixedClock}

	req, err := b.Build(OpGetDeviceNow, NewSessionWithToken("T", "C"), PathParams{"guid": "CS-Z25+abc"}, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	if got := req.Header.Get("X-User-Authorization"); got != "T" {
		t.Errorf("authorization = %q, want T", got)
	}
	if req.URL != "https://example.test/deviceStatus/now/CS-Z25+abc" {
		t.Errorf("url = %s", req.URL)
	}
}

func TestBuildEndpoints(t *testing.T) {
	tests := []struct {
		op     Operation
		method string
		path   string
	}{
		{OpLogin, http.MethodPost, "/auth/login"},
		{OpListGroups, http.MethodGet, "/device/group"},
		{OpGetDevice, http.MethodGet, "/deviceStatus/g1"},
		{OpGetDeviceNow, http.MethodGet, "/deviceStatus/now/g1"},
		{OpControlDevice, http.MethodPost, "/deviceStatus/control"},
	}

	b := RequestBuilder{BaseURL: "http://h"}
	for _, tc := range tests {
		req, err := b.Build(tc.op, nil, PathParams{"guid": "g1"}, nil)
		if err != nil {
			t.Fatalf("building %s: %v", tc.op, err)
		}
		if req.Method != tc.method || req.URL != "http://h"+tc.path {
			t.Errorf("%s = %s %s, want %s %s", tc.op, req.Method, req.URL, tc.method, tc.path)
		}
	}

	if _, err := b.Build(Operation(99), nil, nil, nil); err == nil {
		t.Errorf("unknown operation built")
	}
}
