package ports

// ManifestPort reads the declared dependency set from a project root.
type ManifestPort interface {
	// LoadDependencies returns the name -> declared version mapping for every
	// dependency declared in the project manifest, native or not.
	LoadDependencies(root string) (map[string]string, error)
}
