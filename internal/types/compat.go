package types

// CompatibilityKind tags one classified diff entry.
type CompatibilityKind string

const (
	// CompatibilityMatched means both the local native set and the channel
	// manifest carry the dependency. Versions are reported verbatim; equality
	// is not judged here.
	CompatibilityMatched CompatibilityKind = "matched"

	// CompatibilityLocalOnly means the dependency is installed locally but is
	// not recorded against the channel.
	CompatibilityLocalOnly CompatibilityKind = "local_only"

	// CompatibilityRemoteOnly means the channel records the dependency but it
	// is absent from the local native set.
	CompatibilityRemoteOnly CompatibilityKind = "remote_only"
)

// CompatibilityEntry is one dependency name classified against the channel
// manifest. A name appears in exactly one entry per report.
type CompatibilityEntry struct {
	Kind          CompatibilityKind `json:"kind" yaml:"kind"`
	Name          string            `json:"name" yaml:"name"`
	LocalVersion  string            `json:"local_version,omitempty" yaml:"local_version,omitempty"`
	RemoteVersion string            `json:"remote_version,omitempty" yaml:"remote_version,omitempty"`
}

// CompatReport is the full result of one compatibility check, written by the
// report adapter and printed by the CLI.
type CompatReport struct {
	App     string `json:"app" yaml:"app"`
	Channel string `json:"channel" yaml:"channel"`

	// Entries is the classified diff over the union of local native names and
	// channel manifest names.
	Entries []CompatibilityEntry `json:"entries" yaml:"entries"`

	// Dependencies is the raw declared dependency list, native and
	// non-native, for caller-side reporting.
	Dependencies []DependencyRecord `json:"dependencies" yaml:"dependencies"`
}
