package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"otapush/internal/ports"
)

const manifestFileName = "package.json"

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) LoadDependencies(root string) (map[string]string, error) {
	if root == "" {
		root = "."
	}
	data, err := os.ReadFile(filepath.Join(root, manifestFileName))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package manifest not found").
			WithCause(err)
	}
	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package manifest").
			WithCause(err)
	}
	section, ok := manifest["dependencies"]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package manifest has no dependencies section")
	}
	var declared map[string]interface{}
	if err := json.Unmarshal(section, &declared); err != nil || declared == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package manifest has no dependencies section")
	}
	dependencies := make(map[string]string, len(declared))
	for name, raw := range declared {
		version, ok := raw.(string)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("dependency version must be a string: %s", name))
		}
		dependencies[name] = version
	}
	return dependencies, nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
