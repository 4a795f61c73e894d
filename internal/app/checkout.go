package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"abap-checkout/internal/core"
)

// CheckoutProgram downloads the source of one program into the
// request directory. An empty directory targets the working directory.
func (s Service) CheckoutProgram(ctx context.Context, req CheckoutObjectRequest) (CheckoutObjectResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CheckoutObjectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("program name is required")
	}
	exporter := core.ProgramExporter{Objects: s.Objects}
	if err := exporter.Export(ctx, name, req.Dir); err != nil {
		return CheckoutObjectResult{}, err
	}
	return CheckoutObjectResult{Name: name}, nil
}

// CheckoutInterface downloads the source of one interface.
func (s Service) CheckoutInterface(ctx context.Context, req CheckoutObjectRequest) (CheckoutObjectResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CheckoutObjectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("interface name is required")
	}
	exporter := core.InterfaceExporter{Objects: s.Objects}
	if err := exporter.Export(ctx, name, req.Dir); err != nil {
		return CheckoutObjectResult{}, err
	}
	return CheckoutObjectResult{Name: name}, nil
}

// CheckoutClass downloads all source parts and the metadata document
// of one class.
func (s Service) CheckoutClass(ctx context.Context, req CheckoutObjectRequest) (CheckoutObjectResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CheckoutObjectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class name is required")
	}
	exporter := core.ClassExporter{Objects: s.Objects, Metadata: s.Metadata}
	if err := exporter.Export(ctx, name, req.Dir); err != nil {
		return CheckoutObjectResult{}, err
	}
	return CheckoutObjectResult{Name: name}, nil
}
