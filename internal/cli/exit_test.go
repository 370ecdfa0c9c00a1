package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fitcoach/start-frontend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	launchErr := domain.NewLaunchError(errors.New("change directory: chdir /tmp/missing-dir: no such file or directory"))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "nil",
			err:      nil,
			wantCode: 0,
			wantOut:  "",
		},
		{
			name:     "launch failure",
			err:      &ExitError{Err: launchErr, Code: 1},
			wantCode: 1,
			wantOut:  "Error starting frontend: change directory: chdir /tmp/missing-dir: no such file or directory\n",
		},
		{
			name:     "launch failure with exit zero",
			err:      &ExitError{Err: launchErr, Code: 0},
			wantCode: 0,
			wantOut:  "Error starting frontend: change directory: chdir /tmp/missing-dir: no such file or directory\n",
		},
		{
			name:     "dev server exit status is silent",
			err:      &ExitError{Code: 130},
			wantCode: 130,
			wantOut:  "",
		},
		{
			name:     "other error",
			err:      errors.New("unknown flag: --nope"),
			wantCode: 1,
			wantOut:  "Error: unknown flag: --nope\n",
		},
		{
			name:     "config exists",
			err:      domain.ErrConfigExists,
			wantCode: 1,
			wantOut:  "Error: config file already exists\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := HandleError(&buf, tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit status 3", (&ExitError{Code: 3}).Error())

	cause := errors.New("boom")
	err := &ExitError{Err: cause, Code: 1}
	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, cause)
}
