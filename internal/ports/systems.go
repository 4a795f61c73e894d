package ports

import "abap-checkout/internal/types"

// SystemProfilePort resolves named connection profiles from a systems
// file.
type SystemProfilePort interface {
	LookupSystem(path string, name string) (types.SystemProfile, error)
}
