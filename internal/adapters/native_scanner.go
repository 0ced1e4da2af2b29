package adapters

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"otapush/internal/ports"
	"otapush/internal/types"
)

const installedDirName = "node_modules"
const defaultScanWorkers = 8

// nativeSourceExtensions identifies platform-specific source files. A single
// match anywhere in a dependency's installed tree marks it native.
var nativeSourceExtensions = map[string]struct{}{
	".m":     {},
	".mm":    {},
	".swift": {},
	".java":  {},
	".kt":    {},
}

type NativeScannerAdapter struct {
	Workers int
}

func NewNativeScannerAdapter() NativeScannerAdapter {
	return NativeScannerAdapter{Workers: defaultScanWorkers}
}

func (a NativeScannerAdapter) Classify(ctx context.Context, root string, declared map[string]string) ([]types.DependencyRecord, error) {
	if root == "" {
		root = "."
	}
	modulesDir := filepath.Join(root, installedDirName)
	if info, err := os.Stat(modulesDir); err != nil || !info.IsDir() {
		builder := errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("installed packages directory not found")
		if err != nil {
			builder = builder.WithCause(err)
		}
		return nil, builder
	}

	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)

	workers := a.Workers
	if workers <= 0 {
		workers = defaultScanWorkers
	}

	// Each goroutine writes only its own slot, so the join is the only
	// synchronization point.
	records := make([]types.DependencyRecord, len(names))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, name := range names {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dir := filepath.Join(modulesDir, filepath.FromSlash(name))
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				builder := errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("dependency folder missing: %s", name))
				if err != nil {
					builder = builder.WithCause(err)
				}
				return builder
			}
			native, err := containsNativeSource(dir)
			if err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg(fmt.Sprintf("dependency scan failed: %s", name)).
					WithCause(err)
			}
			records[i] = types.DependencyRecord{
				Name:     name,
				Version:  declared[name],
				IsNative: native,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	nativeCount := 0
	for _, record := range records {
		if record.IsNative {
			nativeCount++
		}
	}
	log.Debug().
		Int("dependencies", len(records)).
		Int("native", nativeCount).
		Msg("classified installed dependencies")
	return records, nil
}

// containsNativeSource walks the dependency tree and stops at the first
// native source file. Walk errors are surfaced, not skipped.
func containsNativeSource(dir string) (bool, error) {
	found := false
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if isNativeSourceFile(entry.Name()) {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func isNativeSourceFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || ext == strings.ToLower(name) {
		return false
	}
	_, ok := nativeSourceExtensions[ext]
	return ok
}

var _ ports.ScannerPort = NativeScannerAdapter{}
