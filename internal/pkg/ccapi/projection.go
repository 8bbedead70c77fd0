package ccapi

import "github.com/jake-scott/comfortcloud/internal/pkg/logging"

/*
 *  Reduction of parameter sets to the fields that may be sent to the
 *  control endpoint
 */

// outboundFields is the closed list of fields accepted by the control
// endpoint. A field is copied when present (non-nil), whatever its value.
var outboundFields = []struct {
	name string
	copy func(dst, src *Parameters)
}{
	{"operate", func(dst, src *Parameters) { dst.Operate = clone(src.Operate) }},
	{"temperatureSet", func(dst, src *Parameters) { dst.TemperatureSet = clone(src.TemperatureSet) }},
	{"fanAutoMode", func(dst, src *Parameters) { dst.FanAutoMode = clone(src.FanAutoMode) }},
	{"airDirection", func(dst, src *Parameters) { dst.AirDirection = clone(src.AirDirection) }},
	{"airSwingLR", func(dst, src *Parameters) { dst.AirSwingLR = clone(src.AirSwingLR) }},
	{"airSwingUD", func(dst, src *Parameters) { dst.AirSwingUD = clone(src.AirSwingUD) }},
	{"fanSpeed", func(dst, src *Parameters) { dst.FanSpeed = clone(src.FanSpeed) }},
	{"ecoFunctionData", func(dst, src *Parameters) { dst.EcoFunctionData = clone(src.EcoFunctionData) }},
	{"ecoMode", func(dst, src *Parameters) { dst.EcoMode = clone(src.EcoMode) }},
	{"actualNanoe", func(dst, src *Parameters) { dst.ActualNanoe = clone(src.ActualNanoe) }},
	{"nanoe", func(dst, src *Parameters) { dst.Nanoe = clone(src.Nanoe) }},
	{"operationMode", func(dst, src *Parameters) { dst.OperationMode = clone(src.OperationMode) }},
}

// operationModeCapability maps each operation mode to the capability flag
// the device must advertise before that mode may be commanded
var operationModeCapability = map[OperationMode]func(c Capabilities) bool{
	OperationModeAuto: func(c Capabilities) bool { return c.AutoMode },
	OperationModeCool: func(c Capabilities) bool { return c.CoolMode },
	OperationModeDry:  func(c Capabilities) bool { return c.DryMode },
	OperationModeHeat: func(c Capabilities) bool { return c.HeatMode },
	OperationModeFan:  func(c Capabilities) bool { return c.FanMode },
}

// capabilityGates drop fields the device cannot accept
var capabilityGates = []struct {
	name    string
	present func(p *Parameters) bool
	allowed func(c Capabilities, p *Parameters) bool
	drop    func(p *Parameters)
}{
	{
		name:    "actualNanoe",
		present: func(p *Parameters) bool { return p.ActualNanoe != nil },
		allowed: func(c Capabilities, _ *Parameters) bool { return c.NanoeStandAlone },
		drop:    func(p *Parameters) { p.ActualNanoe = nil },
	},
	{
		name:    "nanoe",
		present: func(p *Parameters) bool { return p.Nanoe != nil },
		allowed: func(c Capabilities, _ *Parameters) bool { return c.Nanoe },
		drop:    func(p *Parameters) { p.Nanoe = nil },
	},
	{
		name:    "operationMode",
		present: func(p *Parameters) bool { return p.OperationMode != nil },
		allowed: func(c Capabilities, p *Parameters) bool { return SupportsOperationMode(c, *p.OperationMode) },
		drop:    func(p *Parameters) { p.OperationMode = nil },
	},
}

// SupportsOperationMode reports whether the capabilities allow mode.
// Unknown modes are never supported.
func SupportsOperationMode(c Capabilities, mode OperationMode) bool {
	supported, ok := operationModeCapability[mode]
	return ok && supported(c)
}

// ProjectOutbound copies the fields of p that the control endpoint accepts.
// Read-only fields are dropped.
func ProjectOutbound(p Parameters) Parameters {
	var out Parameters
	for _, f := range outboundFields {
		f.copy(&out, &p)
	}
	return out
}

// ReduceDeviceToParameters returns the subset of the device's current
// parameters that is valid to send for this device's capabilities
func ReduceDeviceToParameters(d *Device) Parameters {
	if d == nil {
		return Parameters{}
	}

	out := ProjectOutbound(d.Parameters)

	for _, g := range capabilityGates {
		if g.present(&out) && !g.allowed(d.Capabilities, &out) {
			logging.Logger(nil).Debugf("dropping %s for device %s, not supported by its capabilities", g.name, d.DeviceGUID)
			g.drop(&out)
		}
	}

	return out
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
