package ports

import (
	"context"

	"otapush/internal/types"
)

// MetadataPort fetches the native-package manifest recorded against a
// deployment channel from the metadata store.
type MetadataPort interface {
	// FetchChannelNativeManifest returns the validated manifest keyed by
	// package name for the release currently bound to the channel.
	FetchChannelNativeManifest(ctx context.Context, app string, channel string) (map[string]types.RemoteNativePackage, error)
}
