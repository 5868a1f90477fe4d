package cli

import (
	"encoding/json"

	"github.com/askeland/hookgate/internal/extract"
	"github.com/askeland/hookgate/internal/hookio"
	"github.com/askeland/hookgate/internal/normalize"
	"github.com/askeland/hookgate/internal/patterns"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <allowlist-file>",
	Short: "Require every file path in the event to match an allowlist",
	Long: `Extracts all file paths from the tool event and fails unless each
one (in some normalized spelling) matches the allowlist. Unlike guard
and protect this is a positive filter: the allowlist is required, and
a path outside it fails the invocation with exit 1.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runValidate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

const validateHook = "validate"

func runValidate(allowlistFile string) {
	// Required allowlist: a load failure is fatal, no degradation.
	set, err := patterns.Load(allowlistFile)
	if err != nil {
		hookio.Fatal(validateHook, "%v", err)
	}

	ev, err := hookio.ReadEvent()
	if err != nil {
		hookio.Fatal(validateHook, "%v", err)
	}

	var paths []string
	// A bare JSON string payload is itself the path to validate.
	var single string
	if json.Unmarshal(ev.RawPayload, &single) == nil && single != "" {
		paths = []string{single}
	} else {
		paths = extract.Paths(ev.RawPayload)
	}

	if len(paths) == 0 {
		hookio.Fatal(validateHook, "no file paths found in tool input")
	}

	for _, path := range paths {
		matched := false
		for _, candidate := range normalize.Variants(path) {
			if set.Match(candidate) {
				matched = true
				break
			}
		}
		if !matched {
			hookio.Fatal(validateHook, "file path not allowed: %s (allowlist: %s)", path, allowlistFile)
		}
	}
}
