package ccapi

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

// Request describes a single outbound exchange
type Request struct {
	Operation Operation
	Method    string
	URL       string
	Header    http.Header
	Body      []byte
}

// Response is the raw result of an exchange; the status is not interpreted
type Response struct {
	StatusCode int
	StatusText string
	Body       []byte
}

// Transport performs exactly one request/response exchange, without retries
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

type HTTPTransport struct {
	client  *http.Client
	metrics *transportMetrics
}

func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		client:  &http.Client{},
		metrics: newTransportMetrics(),
	}
}

func (t *HTTPTransport) WithTimeout(d time.Duration) *HTTPTransport {
	nt := *t
	c := *t.client
	c.Timeout = d
	nt.client = &c
	return &nt
}

// Collectors returns the transport's prometheus collectors for registration
func (t *HTTPTransport) Collectors() []prometheus.Collector {
	return t.metrics.collectors()
}

func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}

	for k, v := range req.Header {
		httpReq.Header[k] = v
	}

	logging.Logger(ctx).Debugf("sending %s request: %s %s", req.Operation, req.Method, req.URL)

	startTime := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		t.metrics.observe(req.Operation, "error", time.Since(startTime))
		logging.Logger(ctx).WithError(err).Errorf("problem with %s request", req.Operation)
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := ioutil.ReadAll(resp.Body)
	t.metrics.observe(req.Operation, strconv.Itoa(resp.StatusCode), time.Since(startTime))
	if err != nil {
		logging.Logger(ctx).WithError(err).Errorf("reading %s response body", req.Operation)
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}

	logging.Logger(ctx).Debugf("%s response: HTTP %d, %d bytes", req.Operation, resp.StatusCode, len(bodyBytes))

	return &Response{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Body:       bodyBytes,
	}, nil
}

// "403 Forbidden" -> "Forbidden"
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
