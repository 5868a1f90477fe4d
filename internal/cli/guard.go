package cli

import (
	"github.com/askeland/hookgate/internal/approval"
	"github.com/askeland/hookgate/internal/danger"
	"github.com/askeland/hookgate/internal/hookio"
	"github.com/askeland/hookgate/internal/logger"
	"github.com/askeland/hookgate/internal/obfuscate"
	"github.com/askeland/hookgate/internal/patterns"
	"github.com/spf13/cobra"
)

var guardInteractive bool

var guardCmd = &cobra.Command{
	Use:   "guard [allowlist-file]",
	Short: "Block dangerous Bash commands (PreToolUse)",
	Long: `Checks the Bash command of a PreToolUse event against a fixed set of
destructive-command signatures (rm -rf on critical paths, forced
pushes to main/master, chmod 777, unguarded SQL deletes, ...).

An optional allowlist file (one regex per line, # comments) declares
user exceptions; a command matching the allowlist is always allowed,
before any signature runs. A failing allowlist load degrades to "no
allowlist" with a warning.

Block = {"decision":"block","reason":...} on stdout, exit 2.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGuard(args)
	},
}

func init() {
	guardCmd.Flags().BoolVarP(&guardInteractive, "interactive", "i", false, "Prompt for a one-time override on a terminal instead of blocking outright")
	rootCmd.AddCommand(guardCmd)
}

const guardHook = "guard"

func runGuard(args []string) {
	cfg, err := loadConfig()
	if err != nil {
		hookio.Fatal(guardHook, "config load failed: %v", err)
	}

	ev, err := hookio.ReadEvent()
	if err != nil {
		// Safety hook: missing input is never treated as allow.
		hookio.Fatal(guardHook, "%v", err)
	}

	if ev.ToolName != "Bash" {
		return
	}
	command := ev.Command()
	if command == "" {
		return
	}

	auditLog := openAudit(guardHook, cfg)
	defer auditLog.Close()

	allowlistPath := cfg.Allowlist
	if len(args) > 0 {
		allowlistPath = args[0]
	}
	var allow *patterns.Set
	if allowlistPath != "" {
		set, err := patterns.Load(allowlistPath)
		if err != nil {
			// Optional allowlist: degrade, do not abort the check.
			hookio.Warnf(guardHook, "failed to load allowlist %s: %v", allowlistPath, err)
		} else {
			allow = set
		}
	}

	d := decide(command, allow)
	if d.allowlisted {
		hookio.Infof(guardHook, "command allowed by allowlist: %s", truncate(command, 50))
		audit(guardHook, auditLog, logger.AuditEvent{
			ToolName: ev.ToolName, Command: command,
			Decision: "allow", Allowlist: true,
		})
		return
	}
	if !d.blocked {
		audit(guardHook, auditLog, logger.AuditEvent{
			ToolName: ev.ToolName, Command: command, Decision: "allow",
		})
		return
	}

	if guardInteractive {
		choice := approval.Ask(approval.Prompt{Command: command, Reason: d.reason})
		if choice.Approved {
			hookio.Infof(guardHook, "command approved interactively: %s", truncate(command, 50))
			audit(guardHook, auditLog, logger.AuditEvent{
				ToolName: ev.ToolName, Command: command,
				Decision: "allow", Reason: "approved: " + choice.UserAction,
			})
			return
		}
	}

	hookio.Warnf(guardHook, "blocked command: %s", truncate(command, 100))
	audit(guardHook, auditLog, logger.AuditEvent{
		ToolName: ev.ToolName, Command: command,
		Decision: "block", Reason: d.reason,
	})
	auditLog.Close()
	hookio.Block("Blocked: " + d.reason)
}

// decision is the verdict for one guarded command.
type decision struct {
	blocked     bool
	reason      string
	allowlisted bool
}

// decide applies the allowlist override, then the classifiers. An
// allowlist match forces allow before any signature runs; a nil set
// means no allowlist is in effect.
func decide(command string, allow *patterns.Set) decision {
	if allow != nil && allow.Match(command) {
		return decision{allowlisted: true}
	}
	if res := checkCommand(command); res.Dangerous {
		return decision{blocked: true, reason: res.Reason}
	}
	return decision{}
}

// checkCommand runs the danger signatures against the command as
// given, then against its de-obfuscated fold so zero-width splices
// and homoglyph swaps cannot hide a destructive command. Severe
// smuggling characters (invisible, bidi, control) block on their own
// even when the folded command matches no signature, since the
// displayed command cannot be trusted to match the executed one.
func checkCommand(command string) danger.Result {
	if res := danger.Check(command); res.Dangerous {
		return res
	}

	ob := obfuscate.Inspect(command)
	if !ob.Obfuscated {
		return danger.Result{}
	}
	if res := danger.Check(ob.Plain); res.Dangerous {
		return danger.Result{
			Dangerous: true,
			Reason:    res.Reason + " (hidden by " + ob.Describe() + ")",
		}
	}
	if ob.Severe() {
		return danger.Result{
			Dangerous: true,
			Reason:    "Obfuscated command: " + ob.Describe(),
		}
	}
	hookio.Warnf(guardHook, "command contains %s", ob.Describe())
	return danger.Result{}
}
