package mainerror_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-mainerror/mainerror"
)

// exitError carries a process status, like cli.Exit values do.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// captureProcess swaps stderr and os.Exit for the duration of the test.
// Tests using it must not run in parallel.
func captureProcess(t *testing.T) (*bytes.Buffer, *[]int) {
	t.Helper()

	var (
		buf   bytes.Buffer
		codes []int
	)

	restore := mainerror.SetProcess(mainerror.Process{
		Stderr: &buf,
		OsExit: func(code int) { codes = append(codes, code) },
	})
	t.Cleanup(restore)

	return &buf, &codes
}

func TestFprint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, mainerror.Fprint(&buf, chain("top", "root")))
	assert.Equal(t, "Error: top\ncaused by: root\n", buf.String())

	buf.Reset()
	require.NoError(t, mainerror.Fprint(&buf, nil))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, mainerror.Fprint(&buf, mainerror.FromText("")))
	assert.Empty(t, buf.String())
}

func TestFprint_PrefixWrittenOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, mainerror.Fprint(&buf, mainerror.FromText("strings can be used as errors")))
	assert.Equal(t, "Error: strings can be used as errors\n", buf.String())
}

func TestFprint_PropagatesWriteError(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("broken pipe")
	err := mainerror.Fprint(&failingWriter{err: sinkErr}, errors.New("boom"))
	require.ErrorIs(t, err, sinkErr)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain", err: errors.New("boom"), want: 1},
		{name: "carrier", err: &exitError{code: 3, err: errors.New("usage")}, want: 3},
		{
			name: "wrapped carrier",
			err:  fmt.Errorf("run: %w", &exitError{code: 12, err: errors.New("disk full")}),
			want: 12,
		},
		{
			name: "boxed carrier",
			err:  mainerror.From(&exitError{code: 5, err: errors.New("not found")}),
			want: 5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mainerror.ExitCode(tt.err))
		})
	}
}

func TestExit(t *testing.T) {
	buf, codes := captureProcess(t)

	mainerror.Exit(&exitError{code: 4, err: chain("permission denied", "open /etc/shadow")})

	assert.Equal(t, "Error: permission denied\ncaused by: open /etc/shadow\n", buf.String())
	assert.Equal(t, []int{4}, *codes)
}

func TestExit_NilDoesNothing(t *testing.T) {
	buf, codes := captureProcess(t)

	mainerror.Exit(nil)

	var res mainerror.Result
	mainerror.Exit(res)

	var pe *os.PathError
	mainerror.Exit(pe)

	assert.Empty(t, buf.String())
	assert.Empty(t, *codes)
}

func TestMainAndRun(t *testing.T) {
	buf, codes := captureProcess(t)

	mainerror.Main(func() mainerror.Result { return nil })
	mainerror.Run(func() error { return nil })
	assert.Empty(t, *codes)

	mainerror.Main(func() mainerror.Result {
		return mainerror.From(myError{})
	})
	mainerror.Run(func() error {
		return mainerror.FromText("strings can be used as errors")
	})

	assert.Equal(t,
		"Error: human-readable description of MyError\nError: strings can be used as errors\n",
		buf.String(),
	)
	assert.Equal(t, []int{1, 1}, *codes)
}
