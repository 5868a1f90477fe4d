package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/askeland/hookgate/internal/hookio"
	"github.com/askeland/hookgate/internal/runner"
	"github.com/spf13/cobra"
)

var typecheckCmd = &cobra.Command{
	Use:   "typecheck",
	Short: "Run the matching type checker on an edited file (PostToolUse)",
	Long: `Looks up a type checker for the edited file's extension and runs it
with a bounded timeout, surfacing diagnostics on stderr. Informational
hook: it reports type errors but never blocks. Always exits 0.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTypecheck()
	},
}

func init() {
	rootCmd.AddCommand(typecheckCmd)
}

const typecheckHook = "typecheck"

func runTypecheck() {
	cfg, err := loadConfig()
	if err != nil {
		hookio.Warnf(typecheckHook, "config load failed: %v", err)
		return
	}

	ev, err := hookio.ReadEvent()
	if err != nil {
		return
	}

	file := ev.FilePath()
	if file == "" {
		return
	}
	if _, err := os.Stat(file); err != nil {
		return
	}

	argv, ok := cfg.TypeCheckers[filepath.Ext(file)]
	if !ok || len(argv) == 0 {
		return
	}
	if !runner.Exists(argv[0]) {
		hookio.Warnf(typecheckHook, "%s not found in PATH, skipping type check for %s", argv[0], file)
		return
	}

	hookio.Infof(typecheckHook, "running %s on %s", argv[0], file)
	out := runner.Run(append(append([]string{}, argv...), file), cfg.Timeout())

	switch {
	case out.TimedOut:
		hookio.Warnf(typecheckHook, "%s timed out after %s", argv[0], cfg.Timeout())
	case out.Err != nil:
		hookio.Warnf(typecheckHook, "error running %s: %v", argv[0], out.Err)
	case out.ExitCode != 0:
		diagnostics := strings.TrimSpace(out.Stdout + out.Stderr)
		hookio.Errorf(typecheckHook, "type errors in %s:\n%s", file, diagnostics)
	}
}
