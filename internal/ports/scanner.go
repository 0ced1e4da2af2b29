package ports

import (
	"context"

	"otapush/internal/types"
)

// ScannerPort classifies declared dependencies as native or not by
// inspecting their installed file trees.
type ScannerPort interface {
	Classify(ctx context.Context, root string, declared map[string]string) ([]types.DependencyRecord, error)
}
