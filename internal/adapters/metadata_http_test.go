package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otapush/internal/types"
)

func metadataServer(t *testing.T, status int, body string, capture *http.Request) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			*capture = *r
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestMetadataHTTPAdapter_FetchesValidatedManifest(t *testing.T) {
	var captured http.Request
	server := metadataServer(t, http.StatusOK, `{
		"label": "v42",
		"nativePackages": [
			{"name": "camera-kit", "version": "2.1.0"},
			{"name": "keychain", "version": "4.0.1"}
		]
	}`, &captured)

	adapter := NewMetadataHTTPAdapter(server.URL, "secret", 1)
	manifest, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
	require.NoError(t, err)
	assert.Equal(t, map[string]types.RemoteNativePackage{
		"camera-kit": {Name: "camera-kit", Version: "2.1.0"},
		"keychain":   {Name: "keychain", Version: "4.0.1"},
	}, manifest)
	assert.Equal(t, "/apps/demo-app/channels/staging/release", captured.URL.Path)
	assert.Equal(t, "Bearer secret", captured.Header.Get("Authorization"))
}

func TestMetadataHTTPAdapter_EmptyListIsValid(t *testing.T) {
	server := metadataServer(t, http.StatusOK, `{"nativePackages": []}`, nil)

	adapter := NewMetadataHTTPAdapter(server.URL, "", 1)
	manifest, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
	require.NoError(t, err)
	assert.Empty(t, manifest)
}

func TestMetadataHTTPAdapter_MetadataMissing(t *testing.T) {
	for name, body := range map[string]string{
		"field absent": `{"label": "v42"}`,
		"field null":   `{"label": "v42", "nativePackages": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := metadataServer(t, http.StatusOK, body, nil)
			adapter := NewMetadataHTTPAdapter(server.URL, "", 1)
			_, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), "native package metadata missing for channel staging")
		})
	}
}

func TestMetadataHTTPAdapter_MalformedEntriesFailClosed(t *testing.T) {
	for name, body := range map[string]string{
		"numeric name":      `{"nativePackages": [{"name": "ok", "version": "1.0.0"}, {"name": 7, "version": "1.0.0"}]}`,
		"missing version":   `{"nativePackages": [{"name": "camera-kit"}]}`,
		"empty version":     `{"nativePackages": [{"name": "camera-kit", "version": "  "}]}`,
		"entry not object":  `{"nativePackages": ["camera-kit"]}`,
		"list not a list":   `{"nativePackages": {"camera-kit": "2.1.0"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := metadataServer(t, http.StatusOK, body, nil)
			adapter := NewMetadataHTTPAdapter(server.URL, "", 1)
			manifest, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), "native package metadata malformed")
			// Fail-closed: no partial manifest comes back.
			assert.Nil(t, manifest)
		})
	}
}

func TestMetadataHTTPAdapter_ChannelLookupFails(t *testing.T) {
	server := metadataServer(t, http.StatusNotFound, `{"error": "no such channel"}`, nil)

	adapter := NewMetadataHTTPAdapter(server.URL, "", 1)
	_, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "nope")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "channel lookup failed")
}

func TestMetadataHTTPAdapter_TransportError(t *testing.T) {
	server := metadataServer(t, http.StatusOK, `{}`, nil)
	server.Close()

	adapter := NewMetadataHTTPAdapter(server.URL, "", 1)
	_, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel lookup failed")
}

func TestMetadataHTTPAdapter_GarbageBody(t *testing.T) {
	server := metadataServer(t, http.StatusOK, `not json`, nil)

	adapter := NewMetadataHTTPAdapter(server.URL, "", 1)
	_, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel lookup failed")
}

func TestMetadataHTTPAdapter_DuplicateNamesLastWriteWins(t *testing.T) {
	server := metadataServer(t, http.StatusOK, `{
		"nativePackages": [
			{"name": "camera-kit", "version": "1.0.0"},
			{"name": "camera-kit", "version": "2.0.0"}
		]
	}`, nil)

	adapter := NewMetadataHTTPAdapter(server.URL, "", 1)
	manifest, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", manifest["camera-kit"].Version)
}

func TestMetadataHTTPAdapter_EmptyInputs(t *testing.T) {
	adapter := NewMetadataHTTPAdapter("", "", 1)
	_, err := adapter.FetchChannelNativeManifest(t.Context(), "demo-app", "staging")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	adapter = NewMetadataHTTPAdapter("http://localhost:1", "", 1)
	_, err = adapter.FetchChannelNativeManifest(t.Context(), "", "staging")
	require.Error(t, err)
	_, err = adapter.FetchChannelNativeManifest(t.Context(), "demo-app", " ")
	require.Error(t, err)
}
