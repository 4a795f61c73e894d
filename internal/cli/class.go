package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"abap-checkout/internal/app"
)

func newClassCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class <name>",
		Short: "Download all source parts and attributes of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClass(cmd.Context(), cmd, args)
		},
	}
	return cmd
}

func runClass(ctx context.Context, cmd *cobra.Command, args []string) error {
	service, err := newCheckoutService(cmd)
	if err != nil {
		return err
	}
	result, err := service.CheckoutClass(ctx, app.CheckoutObjectRequest{Name: args[0]})
	if err != nil {
		return err
	}
	fmt.Printf("checked out: %s\n", result.Name)
	return nil
}
