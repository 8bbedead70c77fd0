package ccapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

const (
	// DefaultAppVersion is used when the app store cannot be queried
	DefaultAppVersion = "1.17.0"

	DefaultAppVersionURL = "https://itunes.apple.com/lookup?id=1348640525"
)

// AppVersionSource supplies the mobile app version the API expects in the
// X-APP-VERSION header
type AppVersionSource interface {
	AppVersion(ctx context.Context) string
}

// StaticAppVersion always returns the same version
type StaticAppVersion string

func (v StaticAppVersion) AppVersion(ctx context.Context) string {
	return string(v)
}

// StoreAppVersion looks up the current app version in the app store,
// falling back to a fixed version on any error
type StoreAppVersion struct {
	lookupURL string
	fallback  string
	client    *http.Client
}

func NewStoreAppVersion() *StoreAppVersion {
	return &StoreAppVersion{
		lookupURL: DefaultAppVersionURL,
		fallback:  DefaultAppVersion,
		client:    &http.Client{Timeout: time.Second * 10},
	}
}

func (s *StoreAppVersion) WithLookupURL(u string) *StoreAppVersion {
	ns := *s
	ns.lookupURL = u
	return &ns
}

func (s *StoreAppVersion) WithFallback(version string) *StoreAppVersion {
	ns := *s
	ns.fallback = version
	return &ns
}

type storeLookupResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		Version string `json:"version"`
	} `json:"results"`
}

func (s *StoreAppVersion) AppVersion(ctx context.Context) string {
	version, err := s.lookup(ctx)
	if err != nil {
		logging.Logger(ctx).WithError(err).Warnf("looking up app version, using %s", s.fallback)
		return s.fallback
	}

	logging.Logger(ctx).Debugf("app store reports version %s", version)
	return version
}

func (s *StoreAppVersion) lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.lookupURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "building app version request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "executing app version request")
	}
	defer resp.Body.Close()

	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("non-200 code from app store lookup: %d (%s)", resp.StatusCode, resp.Status)
	}

	var lookup storeLookupResponse
	if err := json.Unmarshal(bodyBytes, &lookup); err != nil {
		return "", errors.Wrap(err, "decoding app store lookup response")
	}

	if len(lookup.Results) == 0 || lookup.Results[0].Version == "" {
		return "", errors.New("app store lookup returned no version")
	}

	return lookup.Results[0].Version, nil
}
