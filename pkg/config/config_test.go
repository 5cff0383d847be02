package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg.Restyle)
	require.NotNil(t, cfg.Inject)

	assert.Equal(t, []string{
		"src/components/TestCaseRowNormal.tsx",
		"src/components/TestCaseRowTeaching.tsx",
		"src/components/TableFilters.tsx",
	}, cfg.Restyle.Files)

	// The rule table and its order are a behavioral contract.
	want := []Replacement{
		{Pattern: `border-b-4 border-black`, Replace: `border-b`},
		{Pattern: `border-r-4 border-black`, Replace: `border-r`},
		{Pattern: `border-t-4 border-black`, Replace: `border-t`},
		{Pattern: `border-l-4 border-black`, Replace: `border-l`},
		{Pattern: `border-brutal`, Replace: `border rounded-lg`},
		{Pattern: `shadow-brutal-lg`, Replace: `shadow-md`},
		{Pattern: `hover:shadow-brutal`, Replace: `hover:shadow-md`},
		{Pattern: `shadow-brutal`, Replace: `shadow-sm`},
		{Pattern: `font-black`, Replace: `font-semibold`},
		{Pattern: `border-2 border-black`, Replace: `border`},
	}
	assert.Equal(t, want, cfg.Restyle.Rules)

	assert.False(t, cfg.Restyle.Async)
	assert.Equal(t, "codeChange", cfg.Inject.Sentinel)
	assert.Equal(t, "organisationalPressure", cfg.Inject.Field)
	assert.Equal(t, "1", cfg.Inject.Value)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfigFile(t, "retouch.yaml", `
restyle:
  files:
    - web/app.tsx
  rules:
    - pattern: "text-xl"
      replace: "text-lg"
    - pattern: "p-8"
      replace: "p-4"
      file_filter_glob: "web/**/*.tsx"
inject:
  sentinel: riskLevel
  field: reviewCount
  value: "0"
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"web/app.tsx"}, cfg.Restyle.Files)
	require.Len(t, cfg.Restyle.Rules, 2)
	assert.Equal(t, Replacement{Pattern: "text-xl", Replace: "text-lg"}, cfg.Restyle.Rules[0])
	assert.Equal(t, "web/**/*.tsx", cfg.Restyle.Rules[1].FileFilterGlob)
	assert.Equal(t, "riskLevel", cfg.Inject.Sentinel)
	assert.Equal(t, "reviewCount", cfg.Inject.Field)
	assert.Equal(t, "0", cfg.Inject.Value)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfigFile(t, "retouch.json", `{
  "restyle": {
    "files": ["web/app.tsx"],
    "rules": [{"pattern": "text-xl", "replace": "text-lg"}],
    "async": true
  }
}`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"web/app.tsx"}, cfg.Restyle.Files)
	assert.True(t, cfg.Restyle.Async)
	// Unconfigured sections fall back to defaults.
	assert.Equal(t, "codeChange", cfg.Inject.Sentinel)
}

func TestLoad_HCL(t *testing.T) {
	path := writeConfigFile(t, "retouch.hcl", `
restyle {
  files = ["web/app.tsx"]

  rule {
    pattern = "text-xl"
    replace = "text-lg"
  }

  rule {
    pattern          = "p-8"
    replace          = "p-4"
    file_filter_glob = "web/**/*.tsx"
  }
}

inject {
  sentinel = "riskLevel"
  field    = "reviewCount"
  value    = "0"
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"web/app.tsx"}, cfg.Restyle.Files)
	require.Len(t, cfg.Restyle.Rules, 2)
	assert.Equal(t, "text-lg", cfg.Restyle.Rules[0].Replace)
	assert.Equal(t, "reviewCount", cfg.Inject.Field)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantError string
	}{
		{
			name:      "unsupported_extension",
			file:      "retouch.toml",
			content:   `files = ["a"]`,
			wantError: "unsupported config extension",
		},
		{
			name:      "unknown_yaml_field",
			file:      "retouch.yaml",
			content:   "restyle:\n  paths: [a]\n",
			wantError: "parsing YAML",
		},
		{
			name:      "unknown_json_field",
			file:      "retouch.json",
			content:   `{"restyle": {"paths": ["a"]}}`,
			wantError: "parsing JSON",
		},
		{
			name:      "invalid_rule_pattern",
			file:      "retouch.yaml",
			content:   "restyle:\n  rules:\n    - pattern: \"(\"\n      replace: x\n",
			wantError: "invalid pattern",
		},
		{
			name:      "empty_rule_pattern",
			file:      "retouch.yaml",
			content:   "restyle:\n  rules:\n    - pattern: \"\"\n      replace: x\n",
			wantError: "pattern is required",
		},
		{
			name:      "invalid_hcl",
			file:      "retouch.hcl",
			content:   `restyle {`,
			wantError: "parsing HCL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.file, tt.content)

			_, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(orig))
	})
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	// Run from an empty directory so no .retouch file is picked up.
	chdir(t, t.TempDir())

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ProbesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".retouch.yaml"), []byte("restyle:\n  files: [probe.tsx]\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"probe.tsx"}, cfg.Restyle.Files)
	// Everything else falls back to defaults.
	assert.Equal(t, Default().Restyle.Rules, cfg.Restyle.Rules)
}
