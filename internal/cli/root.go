package cli

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "ABAP_CHECKOUT"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "abap-checkout",
		Short:   "Export ABAP development objects into an abapGit file layout",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().String("host", "", "SAP system host name")
	cmd.PersistentFlags().Int("port", 443, "SAP system HTTP port")
	cmd.PersistentFlags().String("client", "", "SAP client number")
	cmd.PersistentFlags().String("user", "", "Logon user")
	cmd.PersistentFlags().String("password", "", "Logon password")
	cmd.PersistentFlags().Bool("no-ssl", false, "Use plain HTTP")
	cmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate validation")
	cmd.PersistentFlags().String("system", "", "Named system from the systems file")
	cmd.PersistentFlags().String("systems-file", "", "Systems file path")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("host", cmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("port", cmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("client", cmd.PersistentFlags().Lookup("client"))
	_ = viper.BindPFlag("user", cmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", cmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("no_ssl", cmd.PersistentFlags().Lookup("no-ssl"))
	_ = viper.BindPFlag("insecure", cmd.PersistentFlags().Lookup("insecure"))
	_ = viper.BindPFlag("system", cmd.PersistentFlags().Lookup("system"))
	_ = viper.BindPFlag("systems_file", cmd.PersistentFlags().Lookup("systems-file"))

	cmd.AddCommand(newClassCommand())
	cmd.AddCommand(newProgramCommand())
	cmd.AddCommand(newInterfaceCommand())
	cmd.AddCommand(newPackageCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("abap-checkout")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/abap-checkout")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeUnauthenticated, errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeUnavailable:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
