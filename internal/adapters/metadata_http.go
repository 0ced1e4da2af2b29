package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"otapush/internal/ports"
	"otapush/internal/shared"
	"otapush/internal/types"
)

const defaultMetadataTimeout = 30 * time.Second

// MetadataHTTPAdapter queries the metadata store for the release currently
// bound to a channel. One GET per fetch, no retries: a transport failure is
// terminal for the run.
type MetadataHTTPAdapter struct {
	Endpoint  string
	AccessKey string
	Timeout   time.Duration
}

func NewMetadataHTTPAdapter(endpoint string, accessKey string, timeoutSec int) MetadataHTTPAdapter {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultMetadataTimeout
	}
	return MetadataHTTPAdapter{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		Timeout:   timeout,
	}
}

func (a MetadataHTTPAdapter) FetchChannelNativeManifest(ctx context.Context, app string, channel string) (map[string]types.RemoteNativePackage, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(a.Endpoint), "/")
	if endpoint == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata endpoint is empty")
	}
	if strings.TrimSpace(app) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("app identifier is empty")
	}
	if strings.TrimSpace(channel) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("channel name is empty")
	}
	releaseURL := fmt.Sprintf("%s/apps/%s/channels/%s/release", endpoint, url.PathEscape(app), url.PathEscape(channel))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseURL, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create channel lookup request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if key := strings.TrimSpace(a.AccessKey); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("channel lookup failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("channel lookup failed").
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, releaseURL, string(body)))
	}
	manifest, err := decodeNativeManifest(body, channel)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("app", app).
		Str("channel", channel).
		Int("native_packages", len(manifest)).
		Msg("fetched channel native manifest")
	return manifest, nil
}

// decodeNativeManifest validates the untrusted store payload field by field.
// Validation is all-or-nothing: the first invalid entry aborts the whole
// manifest.
func decodeNativeManifest(body []byte, channel string) (map[string]types.RemoteNativePackage, error) {
	var release map[string]interface{}
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("channel lookup failed").
			WithCause(err)
	}
	raw, ok := release["nativePackages"]
	if !ok || raw == nil {
		// A release that was never analyzed for native dependencies. Not the
		// same condition as an empty list.
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("native package metadata missing for channel %s", channel))
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("native package metadata malformed: nativePackages is not a list")
	}
	manifest := make(map[string]types.RemoteNativePackage, len(items))
	for index, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("native package metadata malformed: entry %d is not an object", index))
		}
		name, ok := nonEmptyString(entry["name"])
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("native package metadata malformed: entry %d has no name", index))
		}
		version, ok := nonEmptyString(entry["version"])
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("native package metadata malformed: entry %s has no version", name))
		}
		// The store guarantees name uniqueness per release; last write wins
		// if it ever does not.
		manifest[name] = types.RemoteNativePackage{Name: name, Version: version}
	}
	return manifest, nil
}

func nonEmptyString(raw interface{}) (string, bool) {
	value, ok := raw.(string)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

var _ ports.MetadataPort = MetadataHTTPAdapter{}
