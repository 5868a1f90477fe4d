package cli

import (
	"runtime"
	"strings"
	"time"

	"github.com/askeland/hookgate/internal/runner"
	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify <stop|subagent>",
	Short: "Announce task completion via text-to-speech (Stop/SubagentStop)",
	Long: `Speaks a short completion message using the platform TTS command:
'say' on macOS, espeak or spd-say on Linux. Unknown hook types, missing
TTS binaries and speech failures are all silent. Always exits 0.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runNotify(args)
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

// notifyMessages maps the hook-type argument to the spoken text.
var notifyMessages = map[string]string{
	"stop":     "Task complete",
	"subagent": "Subagent complete",
}

const notifyTimeout = 10 * time.Second

func runNotify(args []string) {
	if len(args) == 0 {
		return
	}
	message, ok := notifyMessages[strings.ToLower(args[0])]
	if !ok {
		return
	}
	argv := ttsCommand(message)
	if argv == nil {
		return
	}
	// Failures are deliberately ignored: a broken speaker setup must
	// never surface as a hook error.
	runner.Run(argv, notifyTimeout)
}

// ttsCommand picks the platform speech command, or nil when the
// platform has none installed.
func ttsCommand(message string) []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"say", message}
	case "linux":
		for _, name := range []string{"espeak", "spd-say"} {
			if runner.Exists(name) {
				return []string{name, message}
			}
		}
	}
	return nil
}
