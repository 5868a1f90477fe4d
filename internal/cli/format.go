package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/askeland/hookgate/internal/hookio"
	"github.com/askeland/hookgate/internal/runner"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Run the matching formatter on an edited file (PostToolUse)",
	Long: `Looks up a formatter for the edited file's extension (configurable
via ~/.hookgate/config.yaml) and runs it with a bounded timeout.
Informational hook: missing formatters, timeouts and formatter errors
are logged and ignored. Always exits 0.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runFormat()
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

const formatHook = "format"

func runFormat() {
	cfg, err := loadConfig()
	if err != nil {
		hookio.Warnf(formatHook, "config load failed: %v", err)
		return
	}

	ev, err := hookio.ReadEvent()
	if err != nil {
		// Informational hook: nothing to check is not an error.
		return
	}

	file := ev.FilePath()
	if file == "" {
		return
	}
	if _, err := os.Stat(file); err != nil {
		hookio.Warnf(formatHook, "file does not exist (may have been deleted): %s", file)
		return
	}

	argv, ok := cfg.Formatters[filepath.Ext(file)]
	if !ok || len(argv) == 0 {
		return
	}
	if !runner.Exists(argv[0]) {
		hookio.Warnf(formatHook, "%s not found in PATH, skipping formatting for %s", argv[0], file)
		return
	}

	hookio.Infof(formatHook, "running %s on %s", argv[0], file)
	out := runner.Run(append(append([]string{}, argv...), file), cfg.Timeout())

	switch {
	case out.TimedOut:
		hookio.Warnf(formatHook, "%s timed out after %s", argv[0], cfg.Timeout())
	case out.Err != nil:
		hookio.Warnf(formatHook, "error running %s: %v", argv[0], out.Err)
	case out.Stderr != "":
		fmt.Fprint(os.Stderr, out.Stderr)
	}
}
