package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
)

var _deviceCmdOpts struct {
	now bool
}

var deviceCmd = &cobra.Command{
	Use:   "device <guid>",
	Short: "Show the status of a device",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doDevice(cmd.Context(), args[0]); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	deviceCmd.Flags().BoolVar(&_deviceCmdOpts.now, "now", false, "ask the device for its live status")

	rootCmd.AddCommand(deviceCmd)
}

func doDevice(ctx context.Context, guid string) error {
	client, store, err := newClient(newTransport())
	if err != nil {
		return err
	}
	if err := ensureSession(ctx, client, store); err != nil {
		return err
	}

	get := client.GetDevice
	if _deviceCmdOpts.now {
		get = client.GetDeviceNow
	}

	device, err := get(ctx, guid)
	if err != nil {
		return errors.Wrapf(err, "fetching device %s", guid)
	}

	if viper.GetBool("json") {
		return printJSON(device)
	}

	fmt.Printf("Device:       %s\n", device.DeviceGUID)
	fmt.Printf("Status:       %s\n", describeParameters(device.Parameters))
	fmt.Printf("Capabilities: %s\n", describeCapabilities(device.Capabilities))
	if p := device.Parameters; p.InsideTemperature != nil || p.OutTemperature != nil {
		fmt.Printf("Inside:       %s\n", describeTemperature(p.InsideTemperature))
		fmt.Printf("Outside:      %s\n", describeTemperature(p.OutTemperature))
	}

	return nil
}

// power, mode and target temperature as tab separated columns
func describeParameters(p ccapi.Parameters) string {
	cols := []string{"-", "-", "-"}
	if p.Operate != nil {
		cols[0] = p.Operate.String()
	}
	if p.OperationMode != nil {
		cols[1] = p.OperationMode.String()
	}
	if p.TemperatureSet != nil {
		cols[2] = fmt.Sprintf("%.1f", *p.TemperatureSet)
	}
	return strings.Join(cols, "\t")
}

func describeCapabilities(c ccapi.Capabilities) string {
	flags := []struct {
		name string
		set  bool
	}{
		{"auto", c.AutoMode},
		{"cool", c.CoolMode},
		{"dry", c.DryMode},
		{"heat", c.HeatMode},
		{"fan", c.FanMode},
		{"nanoe", c.Nanoe},
		{"nanoe-standalone", c.NanoeStandAlone},
		{"quiet", c.QuietMode},
		{"powerful", c.PowerfulMode},
		{"swing-lr", c.AirSwingLR},
	}

	var out []string
	for _, f := range flags {
		if f.set {
			out = append(out, f.name)
		}
	}
	if len(out) == 0 {
		return "none"
	}
	return strings.Join(out, ", ")
}

func describeTemperature(t *float64) string {
	if t == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.1f", *t)
}
