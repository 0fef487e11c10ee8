package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// assumeYesEnv lets CI pipelines approve destructive operations without a prompt.
const assumeYesEnv = "FSUTIL_ASSUME_YES"

// Adapter handles interactive confirmation prompts on the terminal.
type Adapter struct {
	stdin      io.Reader
	stderr     io.Writer
	isTerminal func(fd uintptr) bool
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:      stdin,
		stderr:     stderr,
		isTerminal: isTerminal,
	}
}

// Confirm prints prompt and reads a yes/no answer from the terminal.
func (a *Adapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if v := os.Getenv(assumeYesEnv); v != "" {
		yes, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid %s value %q: %w", assumeYesEnv, v, err)
		}
		if yes {
			return true, nil
		}
	}

	if !a.IsInteractive() {
		return false, errors.New("cannot ask for confirmation: non-interactive terminal (use --yes)")
	}

	fmt.Fprintf(a.stderr, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return a.isTerminal(file.Fd())
	}
	return false
}

// isTerminal also accepts Cygwin and MSYS2 ptys, which x/term reports as pipes.
func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
