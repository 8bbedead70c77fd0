package ccapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

/*
 *   Comfort Cloud enumerated parameter values
 */

type Power int

const (
	PowerOff Power = 0
	PowerOn  Power = 1
)

type OperationMode int

const (
	OperationModeAuto OperationMode = 0
	OperationModeDry  OperationMode = 1
	OperationModeCool OperationMode = 2
	OperationModeHeat OperationMode = 3
	OperationModeFan  OperationMode = 4
)

type FanSpeed int

const (
	FanSpeedAuto    FanSpeed = 0
	FanSpeedLow     FanSpeed = 1
	FanSpeedLowMid  FanSpeed = 2
	FanSpeedMid     FanSpeed = 3
	FanSpeedHighMid FanSpeed = 4
	FanSpeedHigh    FanSpeed = 5
)

type FanAutoMode int

const (
	FanAutoModeAirSwingAuto FanAutoMode = 0
	FanAutoModeDisabled     FanAutoMode = 1
	FanAutoModeAirSwingUD   FanAutoMode = 2
	FanAutoModeAirSwingLR   FanAutoMode = 3
)

type EcoMode int

const (
	EcoModeAuto     EcoMode = 0
	EcoModePowerful EcoMode = 1
	EcoModeQuiet    EcoMode = 2
)

type AirSwingUD int

const (
	AirSwingUDAuto    AirSwingUD = -1
	AirSwingUDUp      AirSwingUD = 0
	AirSwingUDDown    AirSwingUD = 1
	AirSwingUDMid     AirSwingUD = 2
	AirSwingUDUpMid   AirSwingUD = 3
	AirSwingUDDownMid AirSwingUD = 4
	AirSwingUDSwing   AirSwingUD = 5
)

type AirSwingLR int

const (
	AirSwingLRAuto     AirSwingLR = -1
	AirSwingLRRight    AirSwingLR = 0
	AirSwingLRLeft     AirSwingLR = 1
	AirSwingLRMid      AirSwingLR = 2
	AirSwingLRRightMid AirSwingLR = 4
	AirSwingLRLeftMid  AirSwingLR = 5
)

type NanoeMode int

const (
	NanoeModeUnavailable NanoeMode = 0
	NanoeModeOff         NanoeMode = 1
	NanoeModeOn          NanoeMode = 2
	NanoeModeModeG       NanoeMode = 3
	NanoeModeAll         NanoeMode = 4
)

// DataMode selects the granularity of device history data
type DataMode int

const (
	DataModeDay   DataMode = 0
	DataModeWeek  DataMode = 1
	DataModeMonth DataMode = 2
	DataModeYear  DataMode = 4
)

type enumNames[T ~int] map[T]string

func (n enumNames[T]) name(v T) string {
	if s, ok := n[v]; ok {
		return s
	}
	return fmt.Sprintf("unknown (%d)", int(v))
}

func (n enumNames[T]) parse(kind string, s string) (T, error) {
	for v, name := range n {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}

	var zero T
	return zero, errors.Errorf("unknown %s: %q", kind, s)
}

var powerNames = enumNames[Power]{
	PowerOff: "off",
	PowerOn:  "on",
}

var operationModeNames = enumNames[OperationMode]{
	OperationModeAuto: "auto",
	OperationModeDry:  "dry",
	OperationModeCool: "cool",
	OperationModeHeat: "heat",
	OperationModeFan:  "fan",
}

var fanSpeedNames = enumNames[FanSpeed]{
	FanSpeedAuto:    "auto",
	FanSpeedLow:     "low",
	FanSpeedLowMid:  "lowmid",
	FanSpeedMid:     "mid",
	FanSpeedHighMid: "highmid",
	FanSpeedHigh:    "high",
}

var fanAutoModeNames = enumNames[FanAutoMode]{
	FanAutoModeAirSwingAuto: "auto",
	FanAutoModeDisabled:     "disabled",
	FanAutoModeAirSwingUD:   "ud",
	FanAutoModeAirSwingLR:   "lr",
}

var ecoModeNames = enumNames[EcoMode]{
	EcoModeAuto:     "auto",
	EcoModePowerful: "powerful",
	EcoModeQuiet:    "quiet",
}

var airSwingUDNames = enumNames[AirSwingUD]{
	AirSwingUDAuto:    "auto",
	AirSwingUDUp:      "up",
	AirSwingUDDown:    "down",
	AirSwingUDMid:     "mid",
	AirSwingUDUpMid:   "upmid",
	AirSwingUDDownMid: "downmid",
	AirSwingUDSwing:   "swing",
}

var airSwingLRNames = enumNames[AirSwingLR]{
	AirSwingLRAuto:     "auto",
	AirSwingLRRight:    "right",
	AirSwingLRLeft:     "left",
	AirSwingLRMid:      "mid",
	AirSwingLRRightMid: "rightmid",
	AirSwingLRLeftMid:  "leftmid",
}

var nanoeModeNames = enumNames[NanoeMode]{
	NanoeModeUnavailable: "unavailable",
	NanoeModeOff:         "off",
	NanoeModeOn:          "on",
	NanoeModeModeG:       "modeg",
	NanoeModeAll:         "all",
}

var dataModeNames = enumNames[DataMode]{
	DataModeDay:   "day",
	DataModeWeek:  "week",
	DataModeMonth: "month",
	DataModeYear:  "year",
}

func (v Power) String() string         { return powerNames.name(v) }
func (v OperationMode) String() string { return operationModeNames.name(v) }
func (v FanSpeed) String() string      { return fanSpeedNames.name(v) }
func (v FanAutoMode) String() string   { return fanAutoModeNames.name(v) }
func (v EcoMode) String() string       { return ecoModeNames.name(v) }
func (v AirSwingUD) String() string    { return airSwingUDNames.name(v) }
func (v AirSwingLR) String() string    { return airSwingLRNames.name(v) }
func (v NanoeMode) String() string     { return nanoeModeNames.name(v) }
func (v DataMode) String() string      { return dataModeNames.name(v) }

func ParsePower(s string) (Power, error) { return powerNames.parse("power state", s) }
func ParseOperationMode(s string) (OperationMode, error) {
	return operationModeNames.parse("operation mode", s)
}
func ParseFanSpeed(s string) (FanSpeed, error) { return fanSpeedNames.parse("fan speed", s) }
func ParseFanAutoMode(s string) (FanAutoMode, error) {
	return fanAutoModeNames.parse("fan auto mode", s)
}
func ParseEcoMode(s string) (EcoMode, error)       { return ecoModeNames.parse("eco mode", s) }
func ParseAirSwingUD(s string) (AirSwingUD, error) { return airSwingUDNames.parse("up/down swing", s) }
func ParseAirSwingLR(s string) (AirSwingLR, error) {
	return airSwingLRNames.parse("left/right swing", s)
}
func ParseNanoeMode(s string) (NanoeMode, error) { return nanoeModeNames.parse("nanoe mode", s) }
func ParseDataMode(s string) (DataMode, error)   { return dataModeNames.parse("data mode", s) }

// Ref returns a pointer to a copy of v, for populating optional Parameters fields
func Ref[T any](v T) *T {
	return &v
}

func (n enumNames[T]) values() []int {
	out := make([]int, 0, len(n))
	for v := range n {
		out = append(out, int(v))
	}
	sort.Ints(out)
	return out
}

var parameterEnums = map[string][]int{
	"operate":       powerNames.values(),
	"operationMode": operationModeNames.values(),
	"fanSpeed":      fanSpeedNames.values(),
	"fanAutoMode":   fanAutoModeNames.values(),
	"ecoMode":       ecoModeNames.values(),
	"airSwingUD":    airSwingUDNames.values(),
	"airSwingLR":    airSwingLRNames.values(),
	"nanoe":         nanoeModeNames.values(),
	"actualNanoe":   nanoeModeNames.values(),
}

// ParameterEnumValues returns the valid values of an enumerated parameter
// field, by JSON name
func ParameterEnumValues(field string) ([]int, bool) {
	v, ok := parameterEnums[field]
	return v, ok
}
