package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"abap-checkout/internal/ports"
	"abap-checkout/internal/types"
)

// defaultSystemsFile is consulted when no systems file path is given.
const defaultSystemsFile = "abap-systems.yaml"

// SystemFileAdapter reads named connection profiles from a YAML
// systems file.
type SystemFileAdapter struct{}

func NewSystemFileAdapter() SystemFileAdapter {
	return SystemFileAdapter{}
}

func (a SystemFileAdapter) LookupSystem(path string, name string) (types.SystemProfile, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultSystemsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.SystemProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("systems file not found").
			WithCause(err)
	}

	var file types.SystemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.SystemProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse systems yaml").
			WithCause(err)
	}

	profile, ok := file.Systems[name]
	if !ok {
		return types.SystemProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown system: %s", name))
	}
	return profile, nil
}

var _ ports.SystemProfilePort = SystemFileAdapter{}
