package core

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"otapush/internal/types"
)

// ReconcilerCore merges the local native-dependency set and the channel's
// recorded native-package set into a classified diff. It reports divergence;
// it never judges whether diverging versions are compatible.
type ReconcilerCore struct{}

func NewReconcilerCore() ReconcilerCore {
	return ReconcilerCore{}
}

// Reconcile classifies every dependency name into exactly one entry:
// matched when both sides carry it, local-only or remote-only otherwise.
// Non-native local records are excluded from the diff entirely.
func (r ReconcilerCore) Reconcile(ctx context.Context, local []types.DependencyRecord, remote map[string]types.RemoteNativePackage) []types.CompatibilityEntry {
	entries := make([]types.CompatibilityEntry, 0, len(local)+len(remote))
	visited := make(map[string]struct{}, len(local))
	for _, record := range local {
		if !record.IsNative {
			continue
		}
		assert.NotEmpty(ctx, record.Name, "dependency record name must be set")
		if _, ok := visited[record.Name]; ok {
			continue
		}
		visited[record.Name] = struct{}{}
		if pkg, ok := remote[record.Name]; ok {
			entries = append(entries, types.CompatibilityEntry{
				Kind:          types.CompatibilityMatched,
				Name:          record.Name,
				LocalVersion:  record.Version,
				RemoteVersion: pkg.Version,
			})
			continue
		}
		entries = append(entries, types.CompatibilityEntry{
			Kind:         types.CompatibilityLocalOnly,
			Name:         record.Name,
			LocalVersion: record.Version,
		})
	}

	remoteNames := make([]string, 0, len(remote))
	for name := range remote {
		remoteNames = append(remoteNames, name)
	}
	sort.Strings(remoteNames)
	for _, name := range remoteNames {
		if _, ok := visited[name]; ok {
			continue
		}
		entries = append(entries, types.CompatibilityEntry{
			Kind:          types.CompatibilityRemoteOnly,
			Name:          name,
			RemoteVersion: remote[name].Version,
		})
	}

	log.Ctx(ctx).Debug().
		Int("entries", len(entries)).
		Msg("reconciled native dependency sets")
	return entries
}
