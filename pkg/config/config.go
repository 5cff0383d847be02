// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔄 Replacement represents one regex substitution rule
type Replacement struct {
	Pattern        string `json:"pattern" yaml:"pattern" hcl:"pattern"`                                                          // Regular expression to search for
	Replace        string `json:"replace" yaml:"replace" hcl:"replace"`                                                          // Replacement text, may reference capture groups
	FileFilterGlob string `json:"file_filter_glob,omitempty" yaml:"file_filter_glob,omitempty" hcl:"file_filter_glob,optional"` // Optional glob restricting the rule to matching files
}

// 🎨 RestyleConfig configures the restyle command
type RestyleConfig struct {
	Files []string      `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"` // Files to rewrite, processed in order
	Rules []Replacement `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`     // Substitution rules, applied in order
	Async bool          `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"` // Process files concurrently (output order is preserved)
}

// 💉 InjectConfig configures the inject command
type InjectConfig struct {
	Sentinel string `json:"sentinel,omitempty" yaml:"sentinel,omitempty" hcl:"sentinel,optional"` // Field after which to insert
	Field    string `json:"field,omitempty" yaml:"field,omitempty" hcl:"field,optional"`          // Field name to insert
	Value    string `json:"value,omitempty" yaml:"value,omitempty" hcl:"value,optional"`          // Value for the inserted field
}

// 📚 Config represents the complete configuration
type Config struct {
	Restyle *RestyleConfig `json:"restyle,omitempty" yaml:"restyle,omitempty" hcl:"restyle,block"`
	Inject  *InjectConfig  `json:"inject,omitempty" yaml:"inject,omitempty" hcl:"inject,block"`
}

// 🗺️ candidate config files probed when no --config flag is given
var defaultConfigFiles = []string{".retouch.yaml", ".retouch.yml", ".retouch.hcl"}

// 🎯 Load loads the configuration from a file. An empty path probes the
// working directory for a .retouch config and falls back to the built-in
// defaults, which reproduce the original fixup scripts exactly.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			logger.Debug().Msg("no config file found, using built-in defaults")
			return Default(), nil
		}
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		cfg, err = loadJSON(data)
	case ".yaml", ".yml":
		cfg, err = loadYAML(data)
	case ".hcl":
		cfg, err = loadHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported config extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate fills in defaults per section and checks every rule compiles.
// A missing section, file list or rule table falls back to the built-in
// values so a partial config still behaves like the original scripts for
// everything it does not override.
func (cfg *Config) Validate() error {
	def := Default()

	if cfg.Restyle == nil {
		cfg.Restyle = def.Restyle
	}
	if len(cfg.Restyle.Files) == 0 {
		cfg.Restyle.Files = def.Restyle.Files
	}
	if len(cfg.Restyle.Rules) == 0 {
		cfg.Restyle.Rules = def.Restyle.Rules
	}

	if cfg.Inject == nil {
		cfg.Inject = def.Inject
	}
	if cfg.Inject.Sentinel == "" {
		cfg.Inject.Sentinel = def.Inject.Sentinel
	}
	if cfg.Inject.Field == "" {
		cfg.Inject.Field = def.Inject.Field
	}
	if cfg.Inject.Value == "" {
		cfg.Inject.Value = def.Inject.Value
	}

	for i, rule := range cfg.Restyle.Rules {
		if rule.Pattern == "" {
			return errors.Errorf("restyle rule %d: pattern is required", i)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("restyle rule %d: invalid pattern %q: %w", i, rule.Pattern, err)
		}
	}

	for i, file := range cfg.Restyle.Files {
		if strings.TrimSpace(file) == "" {
			return errors.Errorf("restyle file %d: path is empty", i)
		}
	}

	return nil
}

// 📝 loadJSON loads a configuration from JSON data
func loadJSON(data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &cfg, nil
}

// 📝 loadYAML loads a configuration from YAML data
func loadYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// 📝 loadHCL loads a configuration from HCL data
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}
