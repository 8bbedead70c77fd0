package middlewares

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/spf13/viper"

	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

type CorsMw struct {
	h http.Handler
}

// CorsOptions builds the CORS policy from the cors.* configuration
func CorsOptions(cfg *viper.Viper) cors.Options {
	return cors.Options{
		AllowedOrigins: cfg.GetStringSlice("cors.allowed-origins"),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Txn-ID", "X-Correlation-ID"},
	}
}

// Called once, around the router
//
func NewCors(opts cors.Options, next http.Handler) *CorsMw {
	cors := cors.New(opts)

	return &CorsMw{
		h: cors.Handler(next),
	}
}

// This wraps the router rather than joining its middleware chain
//
func (mw *CorsMw) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" {
		logging.Logger(r.Context()).Debugf("cross-origin request from %s", origin)
	}

	mw.h.ServeHTTP(rw, r)
}
