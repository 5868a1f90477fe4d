// Package approval implements the interactive override: when a guard
// decision would block and the hook runs on a real terminal, the user
// may approve the command once instead. Non-interactive runs always
// deny, so a headless agent cannot approve its own commands.
package approval

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Result records the user's choice.
type Result struct {
	Approved   bool
	UserAction string
}

// Prompt carries what the user needs to see before deciding.
type Prompt struct {
	Command string
	Reason  string
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask presents the blocked command and reads an approve/deny choice.
// Without a terminal it auto-denies.
func Ask(p Prompt) Result {
	return ask(p, os.Stdin, IsInteractive())
}

func ask(p Prompt, in *os.File, interactive bool) Result {
	if !interactive {
		return Result{Approved: false, UserAction: "auto_deny_non_interactive"}
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "⚠️  hookgate would block this command")
	fmt.Fprintf(os.Stderr, "Command: %s\n", p.Command)
	fmt.Fprintf(os.Stderr, "Reason:  %s\n", p.Reason)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "  [a] Approve once - run it anyway")
	fmt.Fprintln(os.Stderr, "  [d] Deny - block this command")
	fmt.Fprintln(os.Stderr, "")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(os.Stderr, "Your choice [a/d]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return Result{Approved: false, UserAction: "error_reading_input"}
		}

		switch strings.TrimSpace(strings.ToLower(input)) {
		case "a", "approve", "yes", "y":
			return Result{Approved: true, UserAction: "approve_once"}
		case "d", "deny", "no", "n":
			return Result{Approved: false, UserAction: "deny"}
		default:
			fmt.Fprintln(os.Stderr, "Invalid input. Enter 'a' to approve or 'd' to deny.")
		}
	}
}
