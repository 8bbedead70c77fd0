package cmd

import (
	"testing"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
)

func TestSetParametersFromFlags(t *testing.T) {
	if err := setCmd.ParseFlags([]string{"--power", "on", "--mode", "HEAT", "--temp", "0", "--swing-ud", "auto"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	p, err := setParameters(setCmd)
	if err != nil {
		t.Fatalf("building parameters: %v", err)
	}

	if p.Operate == nil || *p.Operate != ccapi.PowerOn {
		t.Errorf("operate = %v", p.Operate)
	}
	if p.OperationMode == nil || *p.OperationMode != ccapi.OperationModeHeat {
		t.Errorf("operationMode = %v", p.OperationMode)
	}
	if p.TemperatureSet == nil || *p.TemperatureSet != 0 {
		t.Errorf("explicit zero temperature dropped")
	}
	if p.AirSwingUD == nil || *p.AirSwingUD != ccapi.AirSwingUDAuto {
		t.Errorf("airSwingUD = %v", p.AirSwingUD)
	}
	if p.FanSpeed != nil || p.EcoMode != nil || p.Nanoe != nil {
		t.Errorf("unset flags populated: %+v", p)
	}
}

func TestOverlay(t *testing.T) {
	base := ccapi.Parameters{
		Operate:           ccapi.Ref(ccapi.PowerOff),
		TemperatureSet:    ccapi.Ref(20.0),
		InsideTemperature: ccapi.Ref(18.0),
	}

	out := overlay(base, ccapi.Parameters{Operate: ccapi.Ref(ccapi.PowerOn)})
	if *out.Operate != ccapi.PowerOn || *out.TemperatureSet != 20 || *out.InsideTemperature != 18 {
		t.Fatalf("overlay = %+v", out)
	}
}
