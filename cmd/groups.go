package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List device groups and their devices",

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doGroups(cmd.Context()); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func doGroups(ctx context.Context) error {
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

	if viper.GetBool("json") {
		return printJSON(groups)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tDEVICE\tGUID\tMODEL\tPOWER\tMODE\tSET")
	for _, g := range groups {
		for _, d := range g.DeviceList {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				g.GroupName, d.DeviceName, d.DeviceGUID, d.DeviceModuleNumber, describeParameters(d.Parameters))
		}
	}

	return tw.Flush()
}
