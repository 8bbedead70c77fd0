package ccapi

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Body is a normalized JSON object response
type Body map[string]interface{}

// ParseBody parses a raw response body as a JSON object. Bodies that are
// not JSON, or are JSON but not an object, are wrapped as
// {"responseMessage": <raw text>} so the caller always has an object.
func ParseBody(raw []byte) Body {
	if len(raw) > 0 {
		var v interface{}
		if err := json.Unmarshal(raw, &v); err == nil {
			if obj, ok := v.(map[string]interface{}); ok {
				return Body(obj)
			}
		}
	}

	return Body{"responseMessage": string(raw)}
}

// Message returns the placeholder text for a non-JSON body, or the compact
// JSON form of the body otherwise
func (b Body) Message() string {
	if msg, ok := b["responseMessage"].(string); ok {
		return msg
	}

	out, err := json.Marshal(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// Decode converts the body into a typed value
func (b Body) Decode(v interface{}) error {
	data, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "re-encoding response body")
	}

	return json.Unmarshal(data, v)
}

type StatusClass int

const (
	StatusSuccess StatusClass = iota
	StatusAuthFailure
	StatusOtherFailure
)

func (c StatusClass) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusAuthFailure:
		return "auth-failure"
	}
	return "failure"
}

// Classify maps an HTTP status code to its class
func Classify(statusCode int) StatusClass {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return StatusSuccess
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return StatusAuthFailure
	}

	return StatusOtherFailure
}

// Normalize parses the response body and converts non-2xx responses into
// an *AuthError or *RemoteError carrying the annotated body
func Normalize(resp *Response) (Body, error) {
	body := ParseBody(resp.Body)

	class := Classify(resp.StatusCode)
	if class == StatusSuccess {
		return body, nil
	}

	body["httpCode"] = resp.StatusCode
	body["statusCode"] = resp.StatusCode
	body["statusMessage"] = resp.StatusText

	if class == StatusAuthFailure {
		return body, &AuthError{StatusCode: resp.StatusCode, StatusText: resp.StatusText, Body: body}
	}

	return body, &RemoteError{StatusCode: resp.StatusCode, StatusText: resp.StatusText, Body: body}
}
