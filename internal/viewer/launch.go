package viewer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// execCommand allows mocking the spawned process in tests.
var execCommand = exec.CommandContext

// ExitWarning reports that the viewer started but exited non-zero. The
// connection attempt still counts; callers should log it and move on
// rather than fail the run.
type ExitWarning struct {
	Err error
}

func (e *ExitWarning) Error() string {
	return fmt.Sprintf("viewer terminated: %v", e.Err)
}

func (e *ExitWarning) Unwrap() error { return e.Err }

// Launch runs the viewer on the given connection file and waits for it to
// exit. The viewer's output is discarded. Failing to start the process at
// all is an error; a non-zero exit comes back as an ExitWarning.
func Launch(ctx context.Context, viewerBin, descriptorPath string) error {
	cmd := execCommand(ctx, viewerBin, descriptorPath)
	// Stdout and Stderr stay nil so the child's output goes to /dev/null.

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitWarning{Err: exitErr}
		}
		return fmt.Errorf("failed to start viewer %q: %w", viewerBin, err)
	}
	return nil
}
