package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
	"github.com/jake-scott/comfortcloud/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version number of the tool",

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doVersion(); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

type versionResult struct {
	Version           string `json:"version"`
	DefaultAppVersion string `json:"defaultAppVersion"`
}

func doVersion() error {
	if viper.GetBool("json") {
		return printJSON(versionResult{
			Version:           version.Version,
			DefaultAppVersion: ccapi.DefaultAppVersion,
		})
	}

	fmt.Printf("comfortcloud version %s (app version %s)\n", version.Version, ccapi.DefaultAppVersion)
	return nil
}
