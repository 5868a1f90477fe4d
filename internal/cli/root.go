package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	auditPath  string
)

var rootCmd = &cobra.Command{
	Use:   "hookgate",
	Short: "hookgate - safety hooks for AI coding assistant tool calls",
	Long: `hookgate gates the tool calls of an AI coding assistant. Its
subcommands plug into the assistant's hook points and block dangerous
shell commands and access to sensitive files, with an allowlist
override for user exceptions.

Safety hooks (PreToolUse):  guard, protect, validate
Informational (PostToolUse): format, typecheck
Notification (Stop):         notify`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML file (default: ~/.hookgate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&auditPath, "audit", "", "Path to audit log file (default: ~/.hookgate/audit.jsonl)")
}

func Execute() error {
	return rootCmd.Execute()
}
