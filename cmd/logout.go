package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jake-scott/comfortcloud/internal/pkg/tokenstore"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",

	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := tokenFile()
		if err != nil {
			return err
		}

		if err := tokenstore.New(file).Remove(); err != nil {
			return err
		}

		fmt.Printf("Session removed from %s\n", file)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
