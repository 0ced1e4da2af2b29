package ports

import "otapush/internal/types"

// ReportPort writes a compatibility report to a file.
type ReportPort interface {
	Write(path string, report types.CompatReport) error
}
