package app

import (
	"io"
	"os"

	"abap-checkout/internal/adapters"
	"abap-checkout/internal/ports"
	"abap-checkout/internal/types"
)

// Service bundles the ports used by the checkout operations. Diag
// receives user facing diagnostics about skipped objects and defaults
// to stderr.
type Service struct {
	Objects  ports.ObjectRepositoryPort
	Browser  ports.PackageBrowserPort
	Metadata ports.AbapGitXMLPort
	Diag     io.Writer
}

// NewService wires the service with the default adapters for the given
// connection.
func NewService(conn types.Connection) Service {
	adt := adapters.NewADTAdapter(conn)
	return Service{
		Objects:  adt,
		Browser:  adt,
		Metadata: adapters.NewAbapGitXMLAdapter(),
		Diag:     os.Stderr,
	}
}

func (s Service) diag() io.Writer {
	if s.Diag != nil {
		return s.Diag
	}
	return os.Stderr
}
