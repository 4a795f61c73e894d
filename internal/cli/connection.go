package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"abap-checkout/internal/adapters"
	"abap-checkout/internal/app"
	"abap-checkout/internal/ports"
	"abap-checkout/internal/types"
)

func newCheckoutService(cmd *cobra.Command) (app.Service, error) {
	conn, err := buildConnection(cmd)
	if err != nil {
		return app.Service{}, err
	}
	return app.NewService(conn), nil
}

// buildConnection assembles the connection parameters for the run.
// Without --system the flag, environment, and config values apply
// directly. With --system the named profile is the base and explicitly
// set flags override individual fields.
func buildConnection(cmd *cobra.Command) (types.Connection, error) {
	name := strings.TrimSpace(viper.GetString("system"))
	if name == "" {
		return types.Connection{
			Host:     viper.GetString("host"),
			Port:     viper.GetInt("port"),
			Client:   viper.GetString("client"),
			User:     viper.GetString("user"),
			Password: viper.GetString("password"),
			NoSSL:    viper.GetBool("no_ssl"),
			Insecure: viper.GetBool("insecure"),
		}, nil
	}

	var systems ports.SystemProfilePort = adapters.NewSystemFileAdapter()
	profile, err := systems.LookupSystem(viper.GetString("systems_file"), name)
	if err != nil {
		return types.Connection{}, err
	}
	return overlayConnection(cmd, profile.Connection()), nil
}

func overlayConnection(cmd *cobra.Command, base types.Connection) types.Connection {
	if flagChanged(cmd, "host") {
		base.Host = viper.GetString("host")
	}
	if flagChanged(cmd, "port") {
		base.Port = viper.GetInt("port")
	}
	if flagChanged(cmd, "client") {
		base.Client = viper.GetString("client")
	}
	if flagChanged(cmd, "user") {
		base.User = viper.GetString("user")
	}
	if flagChanged(cmd, "password") {
		base.Password = viper.GetString("password")
	}
	if flagChanged(cmd, "no-ssl") {
		base.NoSSL = viper.GetBool("no_ssl")
	}
	if flagChanged(cmd, "insecure") {
		base.Insecure = viper.GetBool("insecure")
	}
	return base
}
