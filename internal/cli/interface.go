package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"abap-checkout/internal/app"
)

func newInterfaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interface <name>",
		Short: "Download the source of an interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterface(cmd.Context(), cmd, args)
		},
	}
	return cmd
}

func runInterface(ctx context.Context, cmd *cobra.Command, args []string) error {
	service, err := newCheckoutService(cmd)
	if err != nil {
		return err
	}
	result, err := service.CheckoutInterface(ctx, app.CheckoutObjectRequest{Name: args[0]})
	if err != nil {
		return err
	}
	fmt.Printf("checked out: %s\n", result.Name)
	return nil
}
