package app

import (
	"otapush/internal/adapters"
	"otapush/internal/ports"
)

type Service struct {
	Manifest ports.ManifestPort
	Scanner  ports.ScannerPort
	Report   ports.ReportPort
}

func NewService() Service {
	return Service{
		Manifest: adapters.NewManifestFileAdapter(),
		Scanner:  adapters.NewNativeScannerAdapter(),
		Report:   adapters.NewReportFileAdapter(),
	}
}
