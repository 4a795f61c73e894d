package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"abap-checkout/internal/app"
)

type packageOptions struct {
	StartingFolder string
	Recursive      bool
}

func newPackageCommand() *cobra.Command {
	opts := packageOptions{}
	cmd := &cobra.Command{
		Use:   "package <name> [directory]",
		Short: "Download sources of all supported objects in a package",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackage(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.StartingFolder, "starting-folder", "src", "Repository folder for the source files")
	cmd.Flags().BoolVar(&opts.Recursive, "recursive", false, "Also check out subpackages")
	_ = viper.BindPFlag("starting_folder", cmd.Flags().Lookup("starting-folder"))
	_ = viper.BindPFlag("recursive", cmd.Flags().Lookup("recursive"))
	return cmd
}

func runPackage(ctx context.Context, cmd *cobra.Command, opts packageOptions, args []string) error {
	service, err := newCheckoutService(cmd)
	if err != nil {
		return err
	}
	directory := ""
	if len(args) > 1 {
		directory = args[1]
	}
	result, err := service.CheckoutPackage(ctx, app.CheckoutPackageRequest{
		Name:           args[0],
		Directory:      directory,
		StartingFolder: resolveString(cmd, opts.StartingFolder, "starting_folder", "starting-folder"),
		Recursive:      resolveBool(cmd, opts.Recursive, "recursive", "recursive"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("checked out package into %s (objects: %d, unsupported: %d)\n", result.RepoDir, result.Exported, result.Unsupported)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
