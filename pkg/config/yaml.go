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
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define YAML schema
	type yamlSource struct {
		Type   string   `yaml:"type,omitempty"`
		Path   string   `yaml:"path,omitempty"`
		Repo   string   `yaml:"repo,omitempty"`
		Ref    string   `yaml:"ref,omitempty"`
		Ignore []string `yaml:"ignore,omitempty"`
	}
	type yamlConfig struct {
		MimeType        string     `yaml:"mime_type"`
		Property        string     `yaml:"property,omitempty"`
		SkipMissing     bool       `yaml:"skip_missing,omitempty"`
		UpdateExtension bool       `yaml:"update_extension,omitempty"`
		Extension       string     `yaml:"extension,omitempty"`
		Policy          string     `yaml:"policy,omitempty"`
		Source          yamlSource `yaml:"source,omitempty"`
		Output          string     `yaml:"output,omitempty"`
		Async           bool       `yaml:"async,omitempty"`
	}

	// Parse YAML
	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	// Convert to model
	cfg := &Config{
		MimeType:        yamlCfg.MimeType,
		Property:        yamlCfg.Property,
		SkipMissing:     yamlCfg.SkipMissing,
		UpdateExtension: yamlCfg.UpdateExtension,
		Extension:       yamlCfg.Extension,
		Policy:          yamlCfg.Policy,
		Source: SourceArgs{
			Type:   yamlCfg.Source.Type,
			Path:   yamlCfg.Source.Path,
			Repo:   yamlCfg.Source.Repo,
			Ref:    yamlCfg.Source.Ref,
			Ignore: yamlCfg.Source.Ignore,
		},
		Output: yamlCfg.Output,
		Async:  yamlCfg.Async,
	}

	return cfg, nil
}
