package ccapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://accsmart.panasonic.com"

	headerAuthorization = "X-User-Authorization"
	appName             = "Comfort Cloud"
	userAgent           = "G-RAC"
	contentTypeJSON     = "application/json; charset=utf-8"
	timestampLayout     = "2006-01-02 15:04:05"
)

// Operation identifies a logical API call
type Operation int

const (
	OpLogin Operation = iota
	OpListGroups
	OpGetDevice
	OpGetDeviceNow
	OpControlDevice
)

type endpoint struct {
	name   string
	method string
	path   string
}

var endpoints = map[Operation]endpoint{
	OpLogin:         {"login", http.MethodPost, "/auth/login"},
	OpListGroups:    {"list-groups", http.MethodGet, "/device/group"},
	OpGetDevice:     {"get-device", http.MethodGet, "/deviceStatus/{guid}"},
	OpGetDeviceNow:  {"get-device-now", http.MethodGet, "/deviceStatus/now/{guid}"},
	OpControlDevice: {"control-device", http.MethodPost, "/deviceStatus/control"},
}

func (op Operation) String() string {
	if e, ok := endpoints[op]; ok {
		return e.name
	}
	return fmt.Sprintf("unknown (%d)", int(op))
}

// PathParams are substituted into `{name}` placeholders of an endpoint path
type PathParams map[string]string

// RequestBuilder composes requests from the endpoint table and session state
type RequestBuilder struct {
	BaseURL    string
	AppVersion string

	// clock for the timestamp header, time.Now when nil
	Now func() time.Time
}

func (b RequestBuilder) Build(op Operation, session *Session, params PathParams, body []byte) (*Request, error) {
	e, ok := endpoints[op]
	if !ok {
		return nil, errors.Errorf("no endpoint for operation %s", op)
	}

	path := e.path
	for k, v := range params {
		path = strings.ReplaceAll(path, "{"+k+"}", v)
	}

	return &Request{
		Operation: op,
		Method:    e.method,
		URL:       strings.TrimSuffix(b.BaseURL, "/") + path,
		Header:    b.headers(session),
		Body:      body,
	}, nil
}

func (b RequestBuilder) headers(session *Session) http.Header {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	h := http.Header{}
	h.Set("Connection", "Keep-Alive")
	h.Set("Content-Type", contentTypeJSON)
	h.Set("Accept", contentTypeJSON)
	h.Set("X-APP-TYPE", "1")
	h.Set("X-APP-VERSION", b.AppVersion)
	h.Set("X-APP-NAME", appName)
	h.Set("X-APP-TIMESTAMP", now().Format(timestampLayout))
	h.Set("X-CFC-API-KEY", "0")
	h.Set("User-Agent", userAgent)

	if token := session.AccessToken(); token != "" {
		h.Set(headerAuthorization, token)
	}

	return h
}
