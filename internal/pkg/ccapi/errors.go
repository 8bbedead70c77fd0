package ccapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when a required input, such as login
// credentials, is missing
var ErrInvalidArgument = errors.New("invalid argument")

// RemoteError is a non-2xx response other than an authorization failure
type RemoteError struct {
	StatusCode int
	StatusText string
	Body       Body
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("comfort cloud API error: HTTP %d (%s): %s", e.StatusCode, e.StatusText, e.Body.Message())
}

// AuthError is a 401 or 403 response. It is never downgraded to a soft
// failure.
type AuthError struct {
	StatusCode int
	StatusText string
	Body       Body
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("comfort cloud authorization failed: HTTP %d (%s): %s", e.StatusCode, e.StatusText, e.Body.Message())
}

// TransportError is a connection level failure: DNS, TCP, TLS or an
// unreadable response
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
func (e *TransportError) Cause() error  { return e.Err }

// IsAuthFailure reports whether err is, or wraps, an *AuthError
func IsAuthFailure(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsRemoteError reports whether err is, or wraps, a *RemoteError
func IsRemoteError(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}

// IsTransportError reports whether err is, or wraps, a *TransportError
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
