package ccapi

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestProjectOutboundDropsReadOnlyFields(t *testing.T) {
	var p Parameters
	raw := `{"operate":1,"temperatureSet":21.5,"insideTemperature":23,"outTemperature":9,"lastSettingMode":2,"extra":"x"}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decoding parameters: %v", err)
	}

	out, err := json.Marshal(ProjectOutbound(p))
	if err != nil {
		t.Fatalf("encoding parameters: %v", err)
	}

	want := `{"operate":1,"temperatureSet":21.5}`
	if string(out) != want {
		t.Fatalf("projection = %s, want %s", out, want)
	}
}

func TestProjectOutboundKeepsZeroValues(t *testing.T) {
	p := Parameters{
		Operate:         Ref(PowerOff),
		OperationMode:   Ref(OperationModeAuto),
		FanSpeed:        Ref(FanSpeedAuto),
		EcoFunctionData: Ref(0),
		Nanoe:           Ref(NanoeModeUnavailable),
	}

	out := ProjectOutbound(p)
	if !reflect.DeepEqual(out, p) {
		t.Fatalf("projection = %+v, want %+v", out, p)
	}
}

func TestProjectOutboundEmpty(t *testing.T) {
	var p Parameters
	if err := json.Unmarshal([]byte(`{"extra":"x","insideTemperature":22}`), &p); err != nil {
		t.Fatalf("decoding parameters: %v", err)
	}

	out, _ := json.Marshal(ProjectOutbound(p))
	if string(out) != "{}" {
		t.Fatalf("projection = %s, want {}", out)
	}
}

func TestProjectOutboundCopies(t *testing.T) {
	p := Parameters{TemperatureSet: Ref(20.0)}
	out := ProjectOutbound(p)

	*out.TemperatureSet = 30
	if *p.TemperatureSet != 20 {
		t.Fatalf("projection shares storage with its input")
	}
}

func TestReduceDeviceToParametersModeGating(t *testing.T) {
	modes := []struct {
		mode OperationMode
		caps Capabilities
	}{
		{OperationModeAuto, Capabilities{AutoMode: true}},
		{OperationModeDry, Capabilities{DryMode: true}},
		{OperationModeCool, Capabilities{CoolMode: true}},
		{OperationModeHeat, Capabilities{HeatMode: true}},
		{OperationModeFan, Capabilities{FanMode: true}},
	}

	for _, tc := range modes {
		t.Run(tc.mode.String(), func(t *testing.T) {
			d := &Device{
				DeviceGUID:   "guid",
				Capabilities: tc.caps,
				Parameters:   Parameters{OperationMode: Ref(tc.mode), Operate: Ref(PowerOn)},
			}

			out := ReduceDeviceToParameters(d)
			if out.OperationMode == nil || *out.OperationMode != tc.mode {
				t.Fatalf("supported mode %s dropped", tc.mode)
			}

			d.Capabilities = Capabilities{}
			out = ReduceDeviceToParameters(d)
			if out.OperationMode != nil {
				t.Fatalf("unsupported mode %s kept", tc.mode)
			}
			if out.Operate == nil || *out.Operate != PowerOn {
				t.Fatalf("operate dropped along with the mode")
			}
		})
	}
}

func TestReduceDeviceToParametersUnknownMode(t *testing.T) {
	d := &Device{
		Capabilities: Capabilities{AutoMode: true, CoolMode: true, DryMode: true, HeatMode: true, FanMode: true},
		Parameters:   Parameters{OperationMode: Ref(OperationMode(9))},
	}

	if out := ReduceDeviceToParameters(d); out.OperationMode != nil {
		t.Fatalf("unknown mode kept: %v", *out.OperationMode)
	}
}

func TestReduceDeviceToParametersNanoeGating(t *testing.T) {
	tests := []struct {
		name       string
		caps       Capabilities
		wantNanoe  bool
		wantActual bool
	}{
		{"none", Capabilities{}, false, false},
		{"nanoe", Capabilities{Nanoe: true}, true, false},
		{"standalone", Capabilities{NanoeStandAlone: true}, false, true},
		{"both", Capabilities{Nanoe: true, NanoeStandAlone: true}, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := &Device{
				Capabilities: tc.caps,
				Parameters:   Parameters{Nanoe: Ref(NanoeModeOn), ActualNanoe: Ref(NanoeModeOn)},
			}

			out := ReduceDeviceToParameters(d)
			if (out.Nanoe != nil) != tc.wantNanoe {
				t.Errorf("nanoe present = %v, want %v", out.Nanoe != nil, tc.wantNanoe)
			}
			if (out.ActualNanoe != nil) != tc.wantActual {
				t.Errorf("actualNanoe present = %v, want %v", out.ActualNanoe != nil, tc.wantActual)
			}
		})
	}
}

func TestReduceDeviceToParametersIdempotent(t *testing.T) {
	d := &Device{
		Capabilities: Capabilities{HeatMode: true, Nanoe: true},
		Parameters: Parameters{
			Operate:           Ref(PowerOn),
			OperationMode:     Ref(OperationModeCool),
			TemperatureSet:    Ref(22.0),
			Nanoe:             Ref(NanoeModeOn),
			ActualNanoe:       Ref(NanoeModeOn),
			InsideTemperature: Ref(25.0),
		},
	}

	once := ReduceDeviceToParameters(d)
	twice := ReduceDeviceToParameters(&Device{Capabilities: d.Capabilities, Parameters: once})

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second reduction changed the result: %+v vs %+v", once, twice)
	}
}

func TestReduceDeviceToParametersNil(t *testing.T) {
	if out := ReduceDeviceToParameters(nil); !reflect.DeepEqual(out, Parameters{}) {
		t.Fatalf("nil device gave %+v", out)
	}
}
