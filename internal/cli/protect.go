package cli

import (
	"fmt"

	"github.com/askeland/hookgate/internal/extract"
	"github.com/askeland/hookgate/internal/hookio"
	"github.com/askeland/hookgate/internal/logger"
	"github.com/askeland/hookgate/internal/sensitive"
	"github.com/spf13/cobra"
)

var protectCmd = &cobra.Command{
	Use:   "protect [patterns-file]",
	Short: "Block access to credential and secret files (PreToolUse)",
	Long: `Extracts file paths from a PreToolUse event (the structured payload
of Read/Edit/Write, or the tokens of a Bash command) and blocks the
tool call when any path matches a sensitive-file signature: .env
files, ~/.ssh, ~/.aws, private keys, credential stores.

An optional patterns file (one regex per line, # comments) extends the
built-in signatures. Invalid lines are skipped with a warning.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runProtect(args)
	},
}

func init() {
	rootCmd.AddCommand(protectCmd)
}

const protectHook = "protect"

func runProtect(args []string) {
	cfg, err := loadConfig()
	if err != nil {
		hookio.Fatal(protectHook, "config load failed: %v", err)
	}

	ev, err := hookio.ReadEvent()
	if err != nil {
		hookio.Fatal(protectHook, "%v", err)
	}

	patternsFile := cfg.SensitivePatterns
	if len(args) > 0 {
		patternsFile = args[0]
	}
	var extra []sensitive.Pattern
	if patternsFile != "" {
		extra = sensitive.LoadExtra(patternsFile, func(format string, a ...any) {
			hookio.Warnf(protectHook, format, a...)
		})
		if len(extra) > 0 {
			hookio.Infof(protectHook, "loaded %d additional patterns from %s", len(extra), patternsFile)
		}
	}

	var paths []string
	switch ev.ToolName {
	case "Bash":
		if command := ev.Command(); command != "" {
			paths = extract.CommandPaths(command, sensitive.MatchesBareWord)
		}
	case "Read", "Edit", "Write":
		if fp := ev.FilePath(); fp != "" {
			paths = append(paths, fp)
		}
		paths = append(paths, extract.Paths(ev.RawPayload)...)
	default:
		paths = extract.Paths(ev.RawPayload)
	}
	paths = extract.Dedupe(paths)

	if len(paths) == 0 {
		return
	}

	auditLog := openAudit(protectHook, cfg)
	defer auditLog.Close()

	for _, path := range paths {
		res := sensitive.CheckWithExtra(path, extra)
		if !res.Sensitive {
			continue
		}
		hookio.Warnf(protectHook, "blocked access to sensitive path: %s", path)
		audit(protectHook, auditLog, logger.AuditEvent{
			ToolName: ev.ToolName, Paths: paths,
			Decision: "block", Reason: res.Reason,
		})
		auditLog.Close()
		hookio.Block(fmt.Sprintf("Blocked: Access to '%s' is not allowed - %s", path, res.Reason))
	}

	audit(protectHook, auditLog, logger.AuditEvent{
		ToolName: ev.ToolName, Paths: paths, Decision: "allow",
	})
}
