package ccapi

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

const (
	statusFailed      = -1
	invalidParamsHint = "Invalid parameter. Please check the input and use the Device's boolean values to check valid capabilities."
)

// Client is the Comfort Cloud API facade. Each operation performs at most
// one request and returns once it completes.
type Client struct {
	username    string
	password    string
	baseURL     string
	session     *Session
	transport   Transport
	appVersions AppVersionSource
	appVersion  *atomic.Pointer[string]
	now         func() time.Time
}

// NewClient returns a client with default settings. username and password
// are used by Login when it is called without credentials.
func NewClient(username string, password string) *Client {
	version := DefaultAppVersion
	appVersion := &atomic.Pointer[string]{}
	appVersion.Store(&version)

	return &Client{
		username:    username,
		password:    password,
		baseURL:     DefaultBaseURL,
		session:     NewSession(),
		transport:   NewHTTPTransport(),
		appVersions: NewStoreAppVersion(),
		appVersion:  appVersion,
		now:         time.Now,
	}
}

func (c *Client) WithBaseURL(u string) *Client {
	nc := *c
	nc.baseURL = u
	return &nc
}

func (c *Client) WithSession(s *Session) *Client {
	nc := *c
	nc.session = s
	return &nc
}

func (c *Client) WithTransport(t Transport) *Client {
	nc := *c
	nc.transport = t
	return &nc
}

// WithAppVersionSource sets where Login looks up the app version. A fixed
// version takes effect immediately.
func (c *Client) WithAppVersionSource(src AppVersionSource) *Client {
	nc := *c
	nc.appVersions = src

	version := c.AppVersion()
	if v, ok := src.(StaticAppVersion); ok {
		version = string(v)
	}
	nc.appVersion = &atomic.Pointer[string]{}
	nc.appVersion.Store(&version)

	return &nc
}

func (c *Client) WithClock(now func() time.Time) *Client {
	nc := *c
	nc.now = now
	return &nc
}

// Session returns the session updated by Login
func (c *Client) Session() *Session {
	return c.session
}

// AppVersion returns the version sent in the X-APP-VERSION header
func (c *Client) AppVersion() string {
	return *c.appVersion.Load()
}

func (c *Client) builder() RequestBuilder {
	return RequestBuilder{
		BaseURL:    c.baseURL,
		AppVersion: c.AppVersion(),
		Now:        c.now,
	}
}

// do runs one exchange and normalizes the response
func (c *Client) do(ctx context.Context, op Operation, params PathParams, payload interface{}) (Body, error) {
	var data []byte
	if payload != nil {
		var err error
		if data, err = json.Marshal(payload); err != nil {
			return nil, errors.Wrapf(err, "encoding %s request", op)
		}
	}

	req, err := c.builder().Build(op, c.session, params, data)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s request", op)
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "executing %s request", op)
	}

	return Normalize(resp)
}

// Login authenticates and stores the session token. Missing arguments
// default to the credentials given to NewClient. Rejected credentials are
// not an error: the result is nil and the session is left unchanged.
func (c *Client) Login(ctx context.Context, username string, password string) (*LoginResponse, error) {
	if username == "" {
		username = c.username
	}
	if password == "" {
		password = c.password
	}
	if username == "" || password == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "username and password must contain a value")
	}

	version := c.appVersions.AppVersion(ctx)
	c.appVersion.Store(&version)

	body, err := c.do(ctx, OpLogin, nil, NewLoginRequest(username, password))
	if err != nil {
		return nil, err
	}

	var result struct {
		Result   *int   `json:"result"`
		UToken   string `json:"uToken"`
		ClientID string `json:"clientId"`
		Language int    `json:"language"`
	}
	if err := body.Decode(&result); err != nil {
		logging.Logger(ctx).WithError(err).Warn("login response not understood, no session")
		return nil, nil
	}

	if result.Result == nil || *result.Result != 0 {
		logging.Logger(ctx).Infof("login rejected: %s", body.Message())
		return nil, nil
	}

	c.session.set(result.UToken, result.ClientID)
	logging.Logger(ctx).Debugf("logged in, client ID %s", result.ClientID)

	return &LoginResponse{
		Result:   *result.Result,
		UToken:   result.UToken,
		ClientID: result.ClientID,
		Language: result.Language,
	}, nil
}

// Groups returns the device groups. An account without groups yields an
// empty, non-nil list.
func (c *Client) Groups(ctx context.Context) ([]Group, error) {
	body, err := c.do(ctx, OpListGroups, nil, nil)
	if err != nil {
		return nil, err
	}

	var groups GroupResponse
	if err := body.Decode(&groups); err != nil {
		logging.Logger(ctx).WithError(err).Warn("group response not understood, assuming no groups")
		return []Group{}, nil
	}

	if groups.GroupCount > 0 && groups.GroupList != nil {
		return groups.GroupList, nil
	}

	return []Group{}, nil
}

// GetDevice returns the stored status of a device
func (c *Client) GetDevice(ctx context.Context, deviceGUID string) (*Device, error) {
	return c.getDevice(ctx, OpGetDevice, deviceGUID)
}

// GetDeviceNow asks the device for its live status
func (c *Client) GetDeviceNow(ctx context.Context, deviceGUID string) (*Device, error) {
	return c.getDevice(ctx, OpGetDeviceNow, deviceGUID)
}

func (c *Client) getDevice(ctx context.Context, op Operation, deviceGUID string) (*Device, error) {
	body, err := c.do(ctx, op, PathParams{"guid": deviceGUID}, nil)
	if err != nil {
		return nil, err
	}

	var device Device
	if err := body.Decode(&device); err != nil {
		return nil, errors.Wrapf(err, "decoding device %s", deviceGUID)
	}

	// the payload does not always carry the GUID
	device.DeviceGUID = deviceGUID

	return &device, nil
}

// SetParameters sends the whitelisted subset of parameters to the device.
// Authorization failures are returned as errors; all other failures are
// reported in the UpdateResponse.
func (c *Client) SetParameters(ctx context.Context, deviceGUID string, parameters Parameters) (*UpdateResponse, error) {
	req := ControlRequest{
		DeviceGUID: deviceGUID,
		Parameters: ProjectOutbound(parameters),
	}

	body, err := c.do(ctx, OpControlDevice, nil, req)
	if err != nil {
		if IsAuthFailure(err) {
			return nil, err
		}
		logging.Logger(ctx).WithError(err).Warnf("setting parameters on device %s", deviceGUID)
		return failedUpdate(err), nil
	}

	var result struct {
		Result *int `json:"result"`
	}
	if err := body.Decode(&result); err != nil || result.Result == nil {
		return &UpdateResponse{Status: statusFailed, StatusText: "Unknown response"}, nil
	}

	resp := &UpdateResponse{Status: *result.Result, StatusText: "OK"}
	if *result.Result != 0 {
		resp.StatusText = "Rejected"
	}

	return resp, nil
}

// SetDevice pushes the capability-filtered parameters of a device. The
// returned UpdateResponse is always populated; an authorization failure is
// additionally returned as the error.
func (c *Client) SetDevice(ctx context.Context, device *Device) (*UpdateResponse, error) {
	if device == nil {
		return failedUpdate(errors.Wrap(ErrInvalidArgument, "no device")), nil
	}

	resp, err := c.SetParameters(ctx, device.DeviceGUID, ReduceDeviceToParameters(device))
	if err != nil {
		return failedUpdate(err), err
	}

	return resp, nil
}

func failedUpdate(err error) *UpdateResponse {
	info := &ErrorInfo{Code: statusFailed, Message: err.Error()}

	var remoteErr *RemoteError
	var authErr *AuthError
	switch {
	case errors.As(err, &remoteErr):
		info.Code = remoteErr.StatusCode
	case errors.As(err, &authErr):
		info.Code = authErr.StatusCode
	}

	return &UpdateResponse{
		Status:     statusFailed,
		StatusText: invalidParamsHint,
		Error:      info,
	}
}
