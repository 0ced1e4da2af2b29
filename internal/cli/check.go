package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"otapush/internal/app"
	"otapush/internal/types"
)

type checkOptions struct {
	Root       string
	App        string
	Channel    string
	Server     string
	AccessKey  string
	Timeout    int
	ReportPath string
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check installed native dependencies against a channel's recorded manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Root, "root", ".", "Project root containing the package manifest")
	cmd.Flags().StringVar(&opts.App, "app", "", "Application identifier")
	cmd.Flags().StringVar(&opts.Channel, "channel", "", "Deployment channel name")
	cmd.Flags().StringVar(&opts.Server, "server", "", "Metadata store endpoint")
	cmd.Flags().StringVar(&opts.AccessKey, "access-key", "", "Metadata store access key")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 0, "Channel lookup timeout in seconds")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write the report to this file (.json or .yaml)")
	_ = viper.BindPFlag("app", cmd.Flags().Lookup("app"))
	_ = viper.BindPFlag("channel", cmd.Flags().Lookup("channel"))
	_ = viper.BindPFlag("server", cmd.Flags().Lookup("server"))
	_ = viper.BindPFlag("access_key", cmd.Flags().Lookup("access-key"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		Root:       opts.Root,
		App:        resolveString(cmd, opts.App, "app", "app"),
		Channel:    resolveString(cmd, opts.Channel, "channel", "channel"),
		Server:     resolveString(cmd, opts.Server, "server", "server"),
		AccessKey:  resolveString(cmd, opts.AccessKey, "access_key", "access-key"),
		TimeoutSec: opts.Timeout,
		ReportPath: opts.ReportPath,
	})
	if err != nil {
		return err
	}
	printCheckResult(result)
	return nil
}

func printCheckResult(result app.CheckResult) {
	matched, localOnly, remoteOnly := 0, 0, 0
	for _, entry := range result.Entries {
		switch entry.Kind {
		case types.CompatibilityMatched:
			matched++
			fmt.Printf("matched     %s local=%s remote=%s\n", entry.Name, entry.LocalVersion, entry.RemoteVersion)
		case types.CompatibilityLocalOnly:
			localOnly++
			fmt.Printf("local-only  %s local=%s\n", entry.Name, entry.LocalVersion)
		case types.CompatibilityRemoteOnly:
			remoteOnly++
			fmt.Printf("remote-only %s remote=%s\n", entry.Name, entry.RemoteVersion)
		}
	}
	fmt.Printf("checked %s/%s: %d matched, %d local-only, %d remote-only\n",
		result.App, result.Channel, matched, localOnly, remoteOnly)
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
