package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
	"github.com/jake-scott/comfortcloud/internal/pkg/tokenstore"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "comfortcloud",
	Short:         "Panasonic Comfort Cloud air conditioner client",
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}

		if err := initConfig(); err != nil {
			return err
		}

		return logging.Configure(viper.GetViper())
	},
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Logger(nil).WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func init() {
	viper.SetDefault("comfortcloud.base-url", ccapi.DefaultBaseURL)
	viper.SetDefault("comfortcloud.app-version-url", ccapi.DefaultAppVersionURL)
	viper.SetDefault("comfortcloud.timeout", time.Second*30)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.comfortcloud.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON")
	rootCmd.PersistentFlags().String("username", "", "Comfort Cloud account user name")
	rootCmd.PersistentFlags().String("password", "", "Comfort Cloud account password")
	rootCmd.PersistentFlags().String("token-file", "", "file holding the session between runs (default is $HOME/.comfortcloud-session.json)")
	rootCmd.PersistentFlags().String("app-version", "", "pin the X-APP-VERSION header instead of looking it up")
	rootCmd.PersistentFlags().Duration("timeout", time.Second*30, "maximum duration of a Comfort Cloud API call, eg. 1m or 10s")

	errPanic(viper.GetViper().BindPFlag("comfortcloud.username", rootCmd.PersistentFlags().Lookup("username")))
	errPanic(viper.GetViper().BindPFlag("comfortcloud.password", rootCmd.PersistentFlags().Lookup("password")))
	errPanic(viper.GetViper().BindPFlag("comfortcloud.token-file", rootCmd.PersistentFlags().Lookup("token-file")))
	errPanic(viper.GetViper().BindPFlag("comfortcloud.app-version", rootCmd.PersistentFlags().Lookup("app-version")))
	errPanic(viper.GetViper().BindPFlag("comfortcloud.timeout", rootCmd.PersistentFlags().Lookup("timeout")))
	errPanic(viper.GetViper().BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")))
}

func errPanic(err error) {
	if err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".comfortcloud")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("COMFORTCLOUD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return errors.Wrap(err, "reading config")
		}
	}

	return nil
}

func tokenFile() (string, error) {
	if f := viper.GetString("comfortcloud.token-file"); f != "" {
		return homedir.Expand(f)
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".comfortcloud-session.json"), nil
}

func newTransport() *ccapi.HTTPTransport {
	return ccapi.NewHTTPTransport().WithTimeout(viper.GetDuration("comfortcloud.timeout"))
}

// newClient builds a client from the configuration, resuming the saved
// session when there is one
func newClient(transport ccapi.Transport) (*ccapi.Client, tokenstore.Store, error) {
	file, err := tokenFile()
	if err != nil {
		return nil, tokenstore.Store{}, err
	}
	store := tokenstore.New(file)

	var versions ccapi.AppVersionSource = ccapi.NewStoreAppVersion().
		WithLookupURL(viper.GetString("comfortcloud.app-version-url"))
	if v := viper.GetString("comfortcloud.app-version"); v != "" {
		versions = ccapi.StaticAppVersion(v)
	}

	client := ccapi.NewClient(viper.GetString("comfortcloud.username"), viper.GetString("comfortcloud.password")).
		WithBaseURL(viper.GetString("comfortcloud.base-url")).
		WithTransport(transport).
		WithAppVersionSource(versions)

	saved, err := store.Load()
	switch {
	case err == nil:
		logging.Logger(nil).Debugf("resuming session: %s", saved)
		client = client.WithSession(saved.Session)
	case os.IsNotExist(errors.Cause(err)):
		logging.Logger(nil).Debugf("no saved session in %s", file)
	default:
		logging.Logger(nil).WithError(err).Warn("ignoring unreadable session file")
	}

	return client, store, nil
}

// ensureSession logs in with the configured credentials when no session was
// resumed, and saves the new session
func ensureSession(ctx context.Context, client *ccapi.Client, store tokenstore.Store) error {
	if client.Session().LoggedIn() {
		return nil
	}

	resp, err := client.Login(ctx, "", "")
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	if resp == nil {
		return errors.New("login rejected, check the user name and password")
	}

	if err := store.Save(client.Session()); err != nil {
		logging.Logger(ctx).WithError(err).Warn("session not saved")
	}
	return nil
}
