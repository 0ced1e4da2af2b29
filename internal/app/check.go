package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"otapush/internal/adapters"
	"otapush/internal/core"
	"otapush/internal/types"
)

// Check runs the full compatibility flow: load the declared dependencies,
// classify them against the installed tree, fetch the channel's recorded
// native manifest, and reconcile the two sets. Any failure aborts the run;
// there is no partial report.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	appID := strings.TrimSpace(req.App)
	if appID == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("app identifier is required")
	}
	channel := strings.TrimSpace(req.Channel)
	if channel == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("channel name is required")
	}
	server := strings.TrimSpace(req.Server)
	if server == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata server is required")
	}

	declared, err := s.Manifest.LoadDependencies(req.Root)
	if err != nil {
		return CheckResult{}, err
	}
	records, err := s.Scanner.Classify(ctx, req.Root, declared)
	if err != nil {
		return CheckResult{}, err
	}

	metadata := adapters.NewMetadataHTTPAdapter(server, req.AccessKey, req.TimeoutSec)
	remote, err := metadata.FetchChannelNativeManifest(ctx, appID, channel)
	if err != nil {
		return CheckResult{}, err
	}

	entries := core.NewReconcilerCore().Reconcile(ctx, records, remote)

	result := CheckResult{
		App:          appID,
		Channel:      channel,
		Entries:      entries,
		Dependencies: records,
	}
	if path := strings.TrimSpace(req.ReportPath); path != "" {
		report := types.CompatReport{
			App:          appID,
			Channel:      channel,
			Entries:      entries,
			Dependencies: records,
		}
		if err := s.Report.Write(path, report); err != nil {
			return CheckResult{}, err
		}
	}
	return result, nil
}
