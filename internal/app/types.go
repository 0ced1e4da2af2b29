package app

import "otapush/internal/types"

type CheckRequest struct {
	Root       string
	App        string
	Channel    string
	Server     string
	AccessKey  string
	TimeoutSec int
	ReportPath string
}

type CheckResult struct {
	App          string
	Channel      string
	Entries      []types.CompatibilityEntry
	Dependencies []types.DependencyRecord
}

type ScanRequest struct {
	Root string
}

type ScanResult struct {
	Dependencies []types.DependencyRecord
}
