package handlers

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
)

// For request validation routines
var formats strfmt.Registry

func init() {
	formats = strfmt.NewFormats()
}

// sanity bounds only; the device enforces its own per-mode range
const (
	minTemperatureSet = 5.0
	maxTemperatureSet = 35.0
)

// parametersBody is the payload of a set-parameters request
type parametersBody struct {
	ccapi.Parameters
}

// Validate checks enumerated fields and the temperature range
func (m *parametersBody) Validate(formats strfmt.Registry) error {
	var res []error

	enums := []struct {
		field string
		value *int
	}{
		{"operate", intValue(m.Operate)},
		{"operationMode", intValue(m.OperationMode)},
		{"fanSpeed", intValue(m.FanSpeed)},
		{"fanAutoMode", intValue(m.FanAutoMode)},
		{"ecoMode", intValue(m.EcoMode)},
		{"airSwingUD", intValue(m.AirSwingUD)},
		{"airSwingLR", intValue(m.AirSwingLR)},
		{"nanoe", intValue(m.Nanoe)},
		{"actualNanoe", intValue(m.ActualNanoe)},
	}

	for _, e := range enums {
		if e.value == nil {
			continue
		}
		allowed, _ := ccapi.ParameterEnumValues(e.field)
		if err := validate.Enum(e.field, "body", swag.IntValue(e.value), allowed); err != nil {
			res = append(res, err)
		}
	}

	if m.TemperatureSet != nil {
		t := swag.Float64Value(m.TemperatureSet)
		if err := validate.Minimum("temperatureSet", "body", t, minTemperatureSet, false); err != nil {
			res = append(res, err)
		}
		if err := validate.Maximum("temperatureSet", "body", t, maxTemperatureSet, false); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// deviceBody is the payload of a set-device request
type deviceBody struct {
	ccapi.Device
}

func (m *deviceBody) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("deviceGuid", "body", m.DeviceGUID); err != nil {
		res = append(res, err)
	}

	p := parametersBody{Parameters: m.Parameters}
	if err := p.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func intValue[T ~int](v *T) *int {
	if v == nil {
		return nil
	}
	return swag.Int(int(*v))
}
