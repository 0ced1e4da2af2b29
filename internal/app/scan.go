package app

import (
	"context"
)

// Scan runs the local half of the compatibility flow: manifest load plus
// native classification, no channel lookup.
func (s Service) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	declared, err := s.Manifest.LoadDependencies(req.Root)
	if err != nil {
		return ScanResult{}, err
	}
	records, err := s.Scanner.Classify(ctx, req.Root, declared)
	if err != nil {
		return ScanResult{}, err
	}
	return ScanResult{Dependencies: records}, nil
}
