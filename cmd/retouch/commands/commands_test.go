package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/retouch/cmd/retouch/opts"
	"github.com/walteh/retouch/pkg/config"
	"github.com/walteh/retouch/pkg/status"
)

func newTestOpts(cfg *config.Config, console *bytes.Buffer) *opts.RootOpts {
	return &opts.RootOpts{
		Config:     cfg,
		UserLogger: status.NewUserLogger(context.Background()),
		Formatter:  status.NewDefaultFileFormatter(),
		Console:    console,
	}
}

func TestInjectCmd_RequiresExactlyOneArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero_args", args: []string{}},
		{name: "two_args", args: []string{"a.ts", "b.ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			cmd := NewInjectCmd(newTestOpts(nil, &console))
			cmd.SetArgs(tt.args)
			cmd.SetOut(&console)
			cmd.SetErr(&console)

			err := cmd.ExecuteContext(context.Background())
			require.Error(t, err, "argument validation must fail before any file is touched")
		})
	}
}

func TestInjectCmd_RewritesTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.ts")
	require.NoError(t, os.WriteFile(path, []byte(`codeChange: "refactor", severity: 2`), 0o644))

	var console bytes.Buffer
	cmd := NewInjectCmd(newTestOpts(config.Default(), &console))
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `codeChange: "refactor", organisationalPressure: 1, severity: 2`, string(got))
	assert.Equal(t, "Fixed "+path+"\n", console.String())
}

func TestRestyleCmd_RunsConfiguredFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.tsx")
	require.NoError(t, os.WriteFile(present, []byte(`className="font-black hover:shadow-brutal"`), 0o644))
	missing := filepath.Join(dir, "missing.tsx")

	cfg := config.Default()
	cfg.Restyle.Files = []string{present, missing}

	var console bytes.Buffer
	cmd := NewRestyleCmd(newTestOpts(cfg, &console))
	cmd.SetArgs([]string{})

	// Per-file failures are isolated, so the command itself succeeds.
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	got, err := os.ReadFile(present)
	require.NoError(t, err)
	assert.Equal(t, `className="font-semibold hover:shadow-md"`, string(got))

	out := console.String()
	assert.Contains(t, out, "Fixed "+present)
	assert.Contains(t, out, "Error fixing "+missing)
	assert.Contains(t, out, "Done!\n")
}
