package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirm prints question and reads a y/N answer from in. Anything other
// than "y" or "yes" declines, including EOF.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprint(out, PromptStyle.Render(question+" [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		_, _ = fmt.Fprintln(out, MutedStyle.Render("  Operation cancelled."))
		return false
	}
}

// ConfirmRemoval asks before deleting a configured account.
func ConfirmRemoval(in io.Reader, out io.Writer, title string) bool {
	return Confirm(in, out, fmt.Sprintf("Remove the Neviweb entry %q?", title))
}

// ReadPassword prompts for a secret on the controlling terminal without
// echoing it. When stdin is not a terminal the first line is read instead.
func ReadPassword(in *os.File, out io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(out, prompt)

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	secret, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(secret), nil
}
