package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

// ComfortCloudHandler exposes the Comfort Cloud client over a small JSON API
type ComfortCloudHandler struct {
	api ccapi.ComfortCloud
}

func NewComfortCloudHandler(api ccapi.ComfortCloud) ComfortCloudHandler {
	return ComfortCloudHandler{api: api}
}

// Register adds the bridge routes to r
func (h *ComfortCloudHandler) Register(r *mux.Router) {
	r.HandleFunc("/groups", h.HandleGroups).Methods(http.MethodGet)
	r.HandleFunc("/devices/{guid}", h.HandleGetDevice).Methods(http.MethodGet)
	r.HandleFunc("/devices/{guid}/now", h.HandleGetDeviceNow).Methods(http.MethodGet)
	r.HandleFunc("/devices/{guid}/parameters", h.HandleSetParameters).Methods(http.MethodPost)
	r.HandleFunc("/devices/{guid}", h.HandleSetDevice).Methods(http.MethodPut)
}

func (h *ComfortCloudHandler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.api.Groups(r.Context())
	if err != nil {
		sendAPIErrorResponse(w, r, err)
		return
	}

	sendJSONResponse(w, r, http.StatusOK, groups)
}

func (h *ComfortCloudHandler) HandleGetDevice(w http.ResponseWriter, r *http.Request) {
	device, err := h.api.GetDevice(r.Context(), mux.Vars(r)["guid"])
	if err != nil {
		sendAPIErrorResponse(w, r, err)
		return
	}

	sendJSONResponse(w, r, http.StatusOK, device)
}

func (h *ComfortCloudHandler) HandleGetDeviceNow(w http.ResponseWriter, r *http.Request) {
	device, err := h.api.GetDeviceNow(r.Context(), mux.Vars(r)["guid"])
	if err != nil {
		sendAPIErrorResponse(w, r, err)
		return
	}

	sendJSONResponse(w, r, http.StatusOK, device)
}

func (h *ComfortCloudHandler) HandleSetParameters(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logging.Logger(r.Context())

	var body parametersBody
	if err := decodeJSONBody(w, r, &body); err != nil {
		ctxLogger.WithError(err).Error("decoding JSON")
		sendErrorResponse(w, r, http.StatusBadRequest, "unable to parse JSON", err)
		return
	}

	if err := body.Validate(formats); err != nil {
		ctxLogger.WithError(err).Error("request validation failure")
		sendErrorResponse(w, r, http.StatusBadRequest, "input validation failed", err)
		return
	}

	resp, err := h.api.SetParameters(r.Context(), mux.Vars(r)["guid"], body.Parameters)
	if err != nil {
		sendAPIErrorResponse(w, r, err)
		return
	}

	sendJSONResponse(w, r, http.StatusOK, resp)
}

func (h *ComfortCloudHandler) HandleSetDevice(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logging.Logger(r.Context())

	var body deviceBody
	if err := decodeJSONBody(w, r, &body); err != nil {
		ctxLogger.WithError(err).Error("decoding JSON")
		sendErrorResponse(w, r, http.StatusBadRequest, "unable to parse JSON", err)
		return
	}

	// the path wins over whatever the body says
	body.DeviceGUID = mux.Vars(r)["guid"]

	if err := body.Validate(formats); err != nil {
		ctxLogger.WithError(err).Error("request validation failure")
		sendErrorResponse(w, r, http.StatusBadRequest, "input validation failed", err)
		return
	}

	resp, err := h.api.SetDevice(r.Context(), &body.Device)
	if err != nil {
		sendAPIErrorResponse(w, r, err)
		return
	}

	sendJSONResponse(w, r, http.StatusOK, resp)
}
