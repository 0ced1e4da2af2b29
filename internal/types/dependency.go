package types

// DependencyRecord is one dependency declared in the local package manifest,
// classified after inspecting its installed file tree. Records are built once
// per check run and never mutated afterwards.
type DependencyRecord struct {
	// Name is the declared package name, unique within a manifest.
	Name string `json:"name" yaml:"name"`

	// Version is the declared version string, reported verbatim.
	Version string `json:"version" yaml:"version"`

	// IsNative is true when the installed tree contains at least one
	// platform-specific source file.
	IsNative bool `json:"is_native" yaml:"is_native"`
}

// RemoteNativePackage is one entry of the native-package manifest recorded
// against a deployment channel. Instances only exist after the untrusted
// store payload passed field-by-field validation.
type RemoteNativePackage struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}
