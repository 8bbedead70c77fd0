package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-openapi/runtime/middleware/header"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

// 100kb max body
const maxBodyBytes = 100 * 1024

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func sendJSONResponse(w http.ResponseWriter, r *http.Request, status int, d interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	if err := enc.Encode(d); err != nil {
		logging.Logger(r.Context()).WithError(err).Error("sending json response")
	}
}

func sendErrorResponse(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	sendJSONResponse(w, r, status, resp)
}

// sendAPIErrorResponse maps a Comfort Cloud client error to a response
func sendAPIErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.Logger(r.Context()).WithError(err).Error("querying Comfort Cloud API")

	switch {
	case ccapi.IsAuthFailure(err):
		sendErrorResponse(w, r, http.StatusUnauthorized, "upstream authorization failed", nil)
	case ccapi.IsRemoteError(err), ccapi.IsTransportError(err):
		sendErrorResponse(w, r, http.StatusBadGateway, "down-stream API error", nil)
	default:
		sendErrorResponse(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
	}
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Header.Get("Content-Type") != "" {
		value, _ := header.ParseValueAndParams(r.Header, "Content-Type")
		if value != "application/json" {
			return fmt.Errorf("expected JSON request, got %s", value)
		}
	}

	reader := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(reader)

	if err := dec.Decode(dst); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("request body must only contain a single JSON object")
	}

	return nil
}
