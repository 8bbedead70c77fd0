package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Comfort Cloud and save the session",

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doLogin(cmd.Context()); err != nil {
			return err
		}

		return nil
	},

	PreRunE: func(cmd *cobra.Command, args []string) error {
		return checkRequiredFlags("comfortcloud.username", "comfortcloud.password")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func doLogin(ctx context.Context) error {
	client, store, err := newClient(newTransport())
	if err != nil {
		return err
	}

	resp, err := client.Login(ctx, "", "")
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	if resp == nil {
		return errors.New("login rejected, check the user name and password")
	}

	// an explicit login must leave a usable session behind
	if err := store.Save(client.Session()); err != nil {
		return err
	}

	if viper.GetBool("json") {
		return printJSON(map[string]string{
			"clientId":   resp.ClientID,
			"appVersion": client.AppVersion(),
			"tokenFile":  store.FileName(),
		})
	}

	fmt.Printf("Logged in, client ID %s (app version %s)\n", resp.ClientID, client.AppVersion())
	fmt.Printf("Session saved to %s\n", store.FileName())
	return nil
}
