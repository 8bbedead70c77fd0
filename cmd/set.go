package cmd

import (
	"context"
	"fmt"

	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
)

var _setCmdOpts struct {
	power      string
	mode       string
	temp       float64
	fan        string
	fanAuto    string
	eco        string
	swingUD    string
	swingLR    string
	nanoe      string
	fromDevice bool
}

var setCmd = &cobra.Command{
	Use:   "set <guid>",
	Short: "Change the settings of a device",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := setParameters(cmd)
		if err != nil {
			return err
		}

		if err := doSet(cmd.Context(), args[0], params); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&_setCmdOpts.power, "power", "", "on or off")
	setCmd.Flags().StringVar(&_setCmdOpts.mode, "mode", "", "auto, dry, cool, heat or fan")
	setCmd.Flags().Float64Var(&_setCmdOpts.temp, "temp", 0, "target temperature")
	setCmd.Flags().StringVar(&_setCmdOpts.fan, "fan", "", "auto, low, lowmid, mid, highmid or high")
	setCmd.Flags().StringVar(&_setCmdOpts.fanAuto, "fan-auto", "", "auto, disabled, ud or lr")
	setCmd.Flags().StringVar(&_setCmdOpts.eco, "eco", "", "auto, powerful or quiet")
	setCmd.Flags().StringVar(&_setCmdOpts.swingUD, "swing-ud", "", "auto, up, upmid, mid, downmid, down or swing")
	setCmd.Flags().StringVar(&_setCmdOpts.swingLR, "swing-lr", "", "auto, left, leftmid, mid, rightmid or right")
	setCmd.Flags().StringVar(&_setCmdOpts.nanoe, "nanoe", "", "off, on, modeg or all")
	setCmd.Flags().BoolVar(&_setCmdOpts.fromDevice, "from-device", false, "apply the changes to the current device state, dropping what the device cannot do")

	rootCmd.AddCommand(setCmd)
}

// setParameters turns the flags that were given into a parameter set
func setParameters(cmd *cobra.Command) (ccapi.Parameters, error) {
	var p ccapi.Parameters
	flags := cmd.Flags()

	parsers := []struct {
		flag  string
		value string
		apply func(string) error
	}{
		{"power", _setCmdOpts.power, func(s string) (err error) {
			v, err := ccapi.ParsePower(s)
			p.Operate = &v
			return err
		}},
		{"mode", _setCmdOpts.mode, func(s string) (err error) {
			v, err := ccapi.ParseOperationMode(s)
			p.OperationMode = &v
			return err
		}},
		{"fan", _setCmdOpts.fan, func(s string) (err error) {
			v, err := ccapi.ParseFanSpeed(s)
			p.FanSpeed = &v
			return err
		}},
		{"fan-auto", _setCmdOpts.fanAuto, func(s string) (err error) {
			v, err := ccapi.ParseFanAutoMode(s)
			p.FanAutoMode = &v
			return err
		}},
		{"eco", _setCmdOpts.eco, func(s string) (err error) {
			v, err := ccapi.ParseEcoMode(s)
			p.EcoMode = &v
			return err
		}},
		{"swing-ud", _setCmdOpts.swingUD, func(s string) (err error) {
			v, err := ccapi.ParseAirSwingUD(s)
			p.AirSwingUD = &v
			return err
		}},
		{"swing-lr", _setCmdOpts.swingLR, func(s string) (err error) {
			v, err := ccapi.ParseAirSwingLR(s)
			p.AirSwingLR = &v
			return err
		}},
		{"nanoe", _setCmdOpts.nanoe, func(s string) (err error) {
			v, err := ccapi.ParseNanoeMode(s)
			p.Nanoe = &v
			return err
		}},
	}

	for _, parser := range parsers {
		if !flags.Changed(parser.flag) {
			continue
		}
		if err := parser.apply(parser.value); err != nil {
			return ccapi.Parameters{}, errors.Wrapf(err, "parsing --%s", parser.flag)
		}
	}

	if flags.Changed("temp") {
		p.TemperatureSet = swag.Float64(_setCmdOpts.temp)
	}

	return p, nil
}

// overlay copies the fields set in changes onto base
func overlay(base ccapi.Parameters, changes ccapi.Parameters) ccapi.Parameters {
	if changes.Operate != nil {
		base.Operate = changes.Operate
	}
	if changes.OperationMode != nil {
		base.OperationMode = changes.OperationMode
	}
	if changes.TemperatureSet != nil {
		base.TemperatureSet = changes.TemperatureSet
	}
	if changes.FanSpeed != nil {
		base.FanSpeed = changes.FanSpeed
	}
	if changes.FanAutoMode != nil {
		base.FanAutoMode = changes.FanAutoMode
	}
	if changes.EcoMode != nil {
		base.EcoMode = changes.EcoMode
	}
	if changes.AirSwingUD != nil {
		base.AirSwingUD = changes.AirSwingUD
	}
	if changes.AirSwingLR != nil {
		base.AirSwingLR = changes.AirSwingLR
	}
	if changes.Nanoe != nil {
		base.Nanoe = changes.Nanoe
	}
	return base
}

func doSet(ctx context.Context, guid string, params ccapi.Parameters) error {
	client, store, err := newClient(newTransport())
	if err != nil {
		return err
	}
	if err := ensureSession(ctx, client, store); err != nil {
		return err
	}

	var resp *ccapi.UpdateResponse
	if _setCmdOpts.fromDevice {
		device, err := client.GetDevice(ctx, guid)
		if err != nil {
			return errors.Wrapf(err, "fetching device %s", guid)
		}
		device.Parameters = overlay(device.Parameters, params)

		resp, err = client.SetDevice(ctx, device)
		if err != nil {
			return errors.Wrapf(err, "updating device %s", guid)
		}
	} else {
		resp, err = client.SetParameters(ctx, guid, params)
		if err != nil {
			return errors.Wrapf(err, "setting parameters on device %s", guid)
		}
	}

	if viper.GetBool("json") {
		return printJSON(resp)
	}

	if resp.Error != nil {
		return errors.Errorf("device %s not updated: %s (%d): %s", guid, resp.StatusText, resp.Error.Code, resp.Error.Message)
	}
	if resp.Status != 0 {
		return errors.Errorf("device %s not updated: %s (%d)", guid, resp.StatusText, resp.Status)
	}

	fmt.Printf("Device %s updated\n", guid)
	return nil
}
