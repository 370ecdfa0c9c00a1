package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fitcoach/start-frontend/internal/domain"
)

// ErrorPrefix starts the line printed when the dev server cannot be started.
const ErrorPrefix = "Error starting frontend: "

// ExitError asks the caller to exit with Code.
// A nil Err means the status is propagated without printing anything.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// HandleError reports err on w and returns the process exit status.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	st := newStyles(w)

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return exitErr.Code
	}

	code := 1
	if exitErr != nil {
		code = exitErr.Code
	}
	if errors.Is(err, domain.ErrLaunchFailed) {
		_, _ = fmt.Fprintln(w, st.Error.Render(ErrorPrefix+err.Error()))
		return code
	}
	_, _ = fmt.Fprintln(w, st.Error.Render("Error: "+err.Error()))
	return code
}
