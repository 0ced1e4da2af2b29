package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"otapush/internal/ports"
	"otapush/internal/types"
)

// ReportFileAdapter writes a compatibility report to disk. The format is
// chosen from the file extension: .json for JSON, anything else YAML.
type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) Write(path string, report types.CompatReport) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	ordered := report
	ordered.Entries = append([]types.CompatibilityEntry(nil), report.Entries...)
	sort.Slice(ordered.Entries, func(i, j int) bool {
		return ordered.Entries[i].Name < ordered.Entries[j].Name
	})
	ordered.Dependencies = append([]types.DependencyRecord(nil), report.Dependencies...)
	sort.Slice(ordered.Dependencies, func(i, j int) bool {
		return ordered.Dependencies[i].Name < ordered.Dependencies[j].Name
	})

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(ordered, "", "  ")
	default:
		data, err = yaml.Marshal(ordered)
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode compatibility report").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write compatibility report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportPort = ReportFileAdapter{}
