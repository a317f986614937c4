// Package confirm asks before an offboarding run touches the cluster.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/devantler-tech/offboard/pkg/svc/offboarder"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
	"golang.org/x/term"
)

// ErrOffboardingCancelled is returned when the user does not confirm a run.
var ErrOffboardingCancelled = errors.New("offboarding cancelled")

// Test override variables with mutexes for thread safety.
var (
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderOverride io.Reader

	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerOverride func() bool
)

// SetStdinReaderForTests overrides the stdin reader for testing.
// Returns a restore function that should be called to reset the override.
func SetStdinReaderForTests(reader io.Reader) func() {
	stdinReaderMu.Lock()

	previous := stdinReaderOverride
	stdinReaderOverride = reader

	stdinReaderMu.Unlock()

	return func() {
		stdinReaderMu.Lock()

		stdinReaderOverride = previous

		stdinReaderMu.Unlock()
	}
}

// SetTTYCheckerForTests overrides the TTY checker for testing.
// Returns a restore function that should be called to reset the override.
func SetTTYCheckerForTests(checker func() bool) func() {
	ttyCheckerMu.Lock()

	previous := ttyCheckerOverride
	ttyCheckerOverride = checker

	ttyCheckerMu.Unlock()

	return func() {
		ttyCheckerMu.Lock()

		ttyCheckerOverride = previous

		ttyCheckerMu.Unlock()
	}
}

func getStdinReader() io.Reader {
	stdinReaderMu.RLock()
	defer stdinReaderMu.RUnlock()

	if stdinReaderOverride != nil {
		return stdinReaderOverride
	}

	return os.Stdin
}

// IsTTY reports whether stdin is a terminal.
func IsTTY() bool {
	ttyCheckerMu.RLock()

	override := ttyCheckerOverride

	ttyCheckerMu.RUnlock()

	if override != nil {
		return override()
	}

	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

// ShouldSkipPrompt reports whether to run without asking: when yes is set or
// stdin is not interactive.
func ShouldSkipPrompt(yes bool) bool {
	return yes || !IsTTY()
}

// ShowPreview lists the operations a run is about to perform.
func ShowPreview(writer io.Writer, plan *offboarder.Report) {
	notify.Warningf(writer, "offboarding %s in namespace %s will perform:", plan.Application, plan.Namespace)

	var preview strings.Builder

	for i, step := range plan.Steps {
		if i > 0 {
			preview.WriteString("\n")
		}

		fmt.Fprintf(&preview, "%2d. %s %s", i+1, step.Step, step.Target)

		if step.Detail != "" {
			fmt.Fprintf(&preview, " (%s)", step.Detail)
		}
	}

	notify.WriteMessage(notify.Message{
		Type:    notify.InfoType,
		Content: preview.String(),
		Writer:  writer,
	})
}

// PromptForConfirmation asks the user to type "yes".
// Returns true only for "yes", case-insensitively.
func PromptForConfirmation(writer io.Writer) bool {
	notify.WriteMessage(notify.Message{
		Type:    notify.WarningType,
		Content: `Type "yes" to confirm offboarding: `,
		Writer:  writer,
	})

	reader := bufio.NewReader(getStdinReader())

	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(input), "yes")
}
