package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"otapush/internal/app"
)

type scanOptions struct {
	Root string
	All  bool
}

func newScanCommand() *cobra.Command {
	opts := scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Classify the locally installed dependencies as native or not",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Root, "root", ".", "Project root containing the package manifest")
	cmd.Flags().BoolVar(&opts.All, "all", false, "List non-native dependencies as well")
	return cmd
}

func runScan(ctx context.Context, opts scanOptions) error {
	service := newAppService()
	result, err := service.Scan(ctx, app.ScanRequest{Root: opts.Root})
	if err != nil {
		return err
	}
	native := 0
	for _, record := range result.Dependencies {
		if record.IsNative {
			native++
			fmt.Printf("native     %s %s\n", record.Name, record.Version)
			continue
		}
		if opts.All {
			fmt.Printf("non-native %s %s\n", record.Name, record.Version)
		}
	}
	fmt.Printf("scanned %d dependencies, %d native\n", len(result.Dependencies), native)
	return nil
}
