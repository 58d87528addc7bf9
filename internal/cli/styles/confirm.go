package styles

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question on out and reads the answer from in.
// Anything but "y" or "yes" counts as no, including EOF.
func (t *Theme) Confirm(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s %s ", t.WarningStyle.Render(message), t.Subtle.Render("[y/N]"))

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
