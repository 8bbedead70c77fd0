package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"text/tabwriter"

	"github.com/korovkin/limiter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the live status of every device",

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doStatus(cmd.Context()); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	statusCmd.Flags().Int("concurrency", 4, "maximum number of devices queried at once")
	errPanic(viper.GetViper().BindPFlag("status.concurrency", statusCmd.Flags().Lookup("concurrency")))

	rootCmd.AddCommand(statusCmd)
}

type deviceStatus struct {
	Group  string        `json:"group"`
	Name   string        `json:"name"`
	GUID   string        `json:"guid"`
	Device *ccapi.Device `json:"device,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// fetchStatuses queries the live status of every grouped device, at most
// maxConcurrent at a time.  Results keep the group listing order.
func fetchStatuses(ctx context.Context, api ccapi.ComfortCloud, groups []ccapi.Group, maxConcurrent int) ([]deviceStatus, error) {
	var statuses []deviceStatus
	for _, g := range groups {
		for _, d := range g.DeviceList {
			statuses = append(statuses, deviceStatus{Group: g.GroupName, Name: d.DeviceName, GUID: d.DeviceGUID})
		}
	}

	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	limit := limiter.NewConcurrencyLimiter(maxConcurrent)

	var mu sync.Mutex
	var authErr error

	for i := range statuses {
		i := i
		limit.ExecuteWithTicket(func(ticket int) {
			st := &statuses[i]
			logging.Logger(ctx).Debugf("status[%d]: fetching device %s", ticket, st.GUID)

			device, err := api.GetDeviceNow(ctx, st.GUID)
			if err != nil {
				logging.Logger(ctx).WithError(err).Warnf("status[%d]: fetching device %s", ticket, st.GUID)
				st.Error = err.Error()

				if ccapi.IsAuthFailure(err) {
					mu.Lock()
					authErr = err
					mu.Unlock()
				}
				return
			}
			st.Device = device
		})
	}

	limit.Wait()

	// a rejected session fails every device, report it once
	if authErr != nil {
		return nil, errors.Wrap(authErr, "fetching device status")
	}

	return statuses, nil
}

func doStatus(ctx context.Context) error {
	client, store, err := newClient(newTransport())
	if err != nil {
		return err
	}
	if err := ensureSession(ctx, client, store); err != nil {
		return err
	}

	groups, err := client.Groups(ctx)
	if err != nil {
		return errors.Wrap(err, "listing groups")
	}

	statuses, err := fetchStatuses(ctx, client, groups, viper.GetInt("status.concurrency"))
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		return printJSON(statuses)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tDEVICE\tPOWER\tMODE\tSET\tINSIDE\tOUTSIDE")
	for _, st := range statuses {
		if st.Device == nil {
			fmt.Fprintf(tw, "%s\t%s\terror: %s\n", st.Group, st.Name, st.Error)
			continue
		}
		p := st.Device.Parameters
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", st.Group, st.Name, describeParameters(p),
			describeTemperature(p.InsideTemperature), describeTemperature(p.OutTemperature))
	}

	return tw.Flush()
}
