package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

func run(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestCheckText(t *testing.T) {
	out, _, err := run(t, nil, "check", "testdata/signup.html")
	require.NoError(t, err)

	assert.Contains(t, out, "testdata/signup.html")
	assert.Contains(t, out, "VALID")
	assert.Contains(t, out, "typeMismatch")
	assert.Contains(t, out, "rangeUnderflow")
	assert.Contains(t, out, "2 of 3 controls invalid")
}

func TestCheckJSON(t *testing.T) {
	out, _, err := run(t, nil, "check", "--format", "json", "testdata/signup.html")
	require.NoError(t, err)

	var got struct {
		Valid   bool `json:"valid"`
		Total   int  `json:"total"`
		Invalid int  `json:"invalid"`
		Entries []struct {
			Name  string   `json:"name"`
			Flags []string `json:"flags"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Invalid)
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "email", got.Entries[0].Name)
	assert.Equal(t, []string{"typeMismatch"}, got.Entries[0].Flags)
}

func TestCheckSnapshot(t *testing.T) {
	out, _, err := run(t, nil, "check", "--strict", "testdata/profile.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "nick")
	assert.Contains(t, out, "0 of 1 controls invalid")
}

func TestCheckMultipleFiles(t *testing.T) {
	out, _, err := run(t, nil, "check", "--format", "yaml", "testdata/profile.yaml", "testdata/signup.html")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "---\n"))
	assert.Contains(t, out, "source: testdata/profile.yaml")
	assert.Contains(t, out, "source: testdata/signup.html")
}

func TestCheckStrict(t *testing.T) {
	_, _, err := run(t, nil, "check", "--strict", "testdata/signup.html", "testdata/profile.yaml")
	require.ErrorIs(t, err, errInvalidControls)
	assert.Contains(t, err.Error(), "1 of 2 documents")
	assert.Equal(t, 2, exitCode(err))
}

func TestCheckStdin(t *testing.T) {
	t.Run("html", func(t *testing.T) {
		in := strings.NewReader(`<input name="code" pattern="[0-9]+" value="12a">`)
		out, _, err := run(t, in, "check", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "stdin")
		assert.Contains(t, out, "patternMismatch")
	})

	t.Run("yaml", func(t *testing.T) {
		in := strings.NewReader("controls:\n  - tag: textarea\n    attributes:\n      required: \"\"\n")
		out, _, err := run(t, in, "check", "--input-format", "yaml", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "valueMissing")
	})
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no files", []string{"check"}, "requires at least 1 arg"},
		{"unknown output format", []string{"check", "--format", "xml", "testdata/signup.html"}, "unknown report format"},
		{"unknown input format", []string{"check", "--input-format", "toml", "testdata/signup.html"}, "unknown input format"},
		{"missing file", []string{"check", "testdata/missing.html"}, "testdata/missing.html"},
		{"watch stdin", []string{"check", "--watch", "-"}, "cannot watch standard input"},
		{"bad log level", []string{"check", "--log-level", "loud", "testdata/signup.html"}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, nil, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, 1, exitCode(err))
		})
	}
}

func TestEnvFile(t *testing.T) {
	t.Setenv("FORMKIT_LOG_LEVEL", "")
	t.Cleanup(config.ResetCache)

	path := filepath.Join(t.TempDir(), "formkit.env")
	require.NoError(t, os.WriteFile(path, []byte("FORMKIT_LOG_LEVEL=loud\n"), 0o600))

	_, _, err := run(t, nil, "--env-file", path, "check", "testdata/signup.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "formkit "+Version)
	assert.Contains(t, out, "Go Version:")
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 200*time.Millisecond)
	defer cancel()

	stderr := &bytes.Buffer{}
	cmd := newRootCmd(strings.NewReader(""), io.Discard, stderr)
	cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0", "--log-level", "info"})
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, stderr.String(), "http server started")
	assert.Contains(t, stderr.String(), "version="+Version)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
}
