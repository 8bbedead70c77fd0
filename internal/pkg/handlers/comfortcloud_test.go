package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
)

type fakeAPI struct {
	err        error
	device     *ccapi.Device
	setGUID    string
	setParams  ccapi.Parameters
	setDevice  *ccapi.Device
	updateResp *ccapi.UpdateResponse
}

func (f *fakeAPI) Login(ctx context.Context, username string, password string) (*ccapi.LoginResponse, error) {
	return nil, f.err
}

func (f *fakeAPI) Groups(ctx context.Context) ([]ccapi.Group, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []ccapi.Group{{GroupID: 1, GroupName: "Home"}}, nil
}

func (f *fakeAPI) GetDevice(ctx context.Context, deviceGUID string) (*ccapi.Device, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ccapi.Device{DeviceGUID: deviceGUID}, nil
}

func (f *fakeAPI) GetDeviceNow(ctx context.Context, deviceGUID string) (*ccapi.Device, error) {
	return f.GetDevice(ctx, deviceGUID)
}

func (f *fakeAPI) SetParameters(ctx context.Context, deviceGUID string, parameters ccapi.Parameters) (*ccapi.UpdateResponse, error) {
	f.setGUID = deviceGUID
	f.setParams = parameters
	return f.updateResp, f.err
}

func (f *fakeAPI) SetDevice(ctx context.Context, device *ccapi.Device) (*ccapi.UpdateResponse, error) {
	f.setDevice = device
	return f.updateResp, f.err
}

func newTestRouter(api ccapi.ComfortCloud) *mux.Router {
	h := NewComfortCloudHandler(api)
	r := mux.NewRouter()
	h.Register(r)
	return r
}

func serve(r http.Handler, method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGroupsHandler(t *testing.T) {
	rec := serve(newTestRouter(&fakeAPI{}), http.MethodGet, "/groups", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var groups []ccapi.Group
	if err := json.NewDecoder(rec.Body).Decode(&groups); err != nil || len(groups) != 1 || groups[0].GroupName != "Home" {
		t.Fatalf("groups = %+v, %v", groups, err)
	}
}

func TestGetDeviceHandler(t *testing.T) {
	r := newTestRouter(&fakeAPI{})

	for _, target := range []string{"/devices/g1", "/devices/g1/now"} {
		rec := serve(r, http.MethodGet, target, "")
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"deviceGuid":"g1"`) {
			t.Fatalf("%s = %d %s", target, rec.Code, rec.Body)
		}
	}
}

func TestUpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"auth", &ccapi.AuthError{StatusCode: 403, StatusText: "Forbidden", Body: ccapi.Body{}}, http.StatusUnauthorized},
		{"remote", &ccapi.RemoteError{StatusCode: 500, Body: ccapi.Body{}}, http.StatusBadGateway},
		{"transport", &ccapi.TransportError{Method: "GET", URL: "http://x", Err: context.DeadlineExceeded}, http.StatusBadGateway},
		{"invalid", ccapi.ErrInvalidArgument, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(newTestRouter(&fakeAPI{err: tc.err}), http.MethodGet, "/groups", "")
			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d", rec.Code, tc.code)
			}
		})
	}

	rec := serve(newTestRouter(&fakeAPI{err: &ccapi.AuthError{StatusCode: 401, Body: ccapi.Body{}}}), http.MethodGet, "/groups", "")
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"upstream authorization failed"}` {
		t.Fatalf("auth failure body = %s", got)
	}
}

func TestSetParametersHandler(t *testing.T) {
	api := &fakeAPI{updateResp: &ccapi.UpdateResponse{Status: 0, StatusText: "OK"}}

	rec := serve(newTestRouter(api), http.MethodPost, "/devices/g1/parameters", `{"operate":1,"temperatureSet":21.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if api.setGUID != "g1" || *api.setParams.Operate != ccapi.PowerOn || *api.setParams.TemperatureSet != 21.5 {
		t.Fatalf("forwarded %s %+v", api.setGUID, api.setParams)
	}
}

func TestSetParametersHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad mode", `{"operationMode":7}`},
		{"too hot", `{"temperatureSet":50}`},
		{"bad swing", `{"airSwingLR":3}`},
		{"not json", `operate=1`},
		{"two objects", `{} {}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{}
			rec := serve(newTestRouter(api), http.MethodPost, "/devices/g1/parameters", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if api.setGUID != "" {
				t.Fatalf("invalid request forwarded")
			}
		})
	}
}

func TestSetDeviceHandler(t *testing.T) {
	api := &fakeAPI{updateResp: &ccapi.UpdateResponse{Status: 0, StatusText: "OK"}}

	body := `{"deviceGuid":"ignored","coolMode":true,"parameters":{"operationMode":2}}`
	rec := serve(newTestRouter(api), http.MethodPut, "/devices/g1", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if api.setDevice == nil || api.setDevice.DeviceGUID != "g1" || !api.setDevice.CoolMode {
		t.Fatalf("forwarded device = %+v", api.setDevice)
	}
}

func TestSetDeviceHandlerAuthFailure(t *testing.T) {
	api := &fakeAPI{
		err:        &ccapi.AuthError{StatusCode: 401, Body: ccapi.Body{}},
		updateResp: &ccapi.UpdateResponse{Status: -1},
	}

	rec := serve(newTestRouter(api), http.MethodPut, "/devices/g1", `{"parameters":{}}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestWrongContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/devices/g1/parameters", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	newTestRouter(&fakeAPI{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
