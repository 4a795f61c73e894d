package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"abap-checkout/internal/app"
)

func newProgramCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program <name>",
		Short: "Download the source of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd.Context(), cmd, args)
		},
	}
	return cmd
}

func runProgram(ctx context.Context, cmd *cobra.Command, args []string) error {
	service, err := newCheckoutService(cmd)
	if err != nil {
		return err
	}
	result, err := service.CheckoutProgram(ctx, app.CheckoutObjectRequest{Name: args[0]})
	if err != nil {
		return err
	}
	fmt.Printf("checked out: %s\n", result.Name)
	return nil
}
