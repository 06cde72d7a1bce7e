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
	"encoding/json"
	"strings"

	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&JSONParser{})
}

// 🔧 JSONParser implements the Parser interface for JSON files
type JSONParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *JSONParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".json")
}

// 📝 Parse parses the config from JSON bytes
func (p *JSONParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define JSON schema
	type jsonSource struct {
		Type   string   `json:"type,omitempty"`
		Path   string   `json:"path,omitempty"`
		Repo   string   `json:"repo,omitempty"`
		Ref    string   `json:"ref,omitempty"`
		Ignore []string `json:"ignore,omitempty"`
	}
	type jsonConfig struct {
		MimeType        string     `json:"mime_type"`
		Property        string     `json:"property,omitempty"`
		SkipMissing     bool       `json:"skip_missing,omitempty"`
		UpdateExtension bool       `json:"update_extension,omitempty"`
		Extension       string     `json:"extension,omitempty"`
		Policy          string     `json:"policy,omitempty"`
		Source          jsonSource `json:"source,omitempty"`
		Output          string     `json:"output,omitempty"`
		Async           bool       `json:"async,omitempty"`
	}

	var jsonCfg jsonConfig
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}

	cfg := &Config{
		MimeType:        jsonCfg.MimeType,
		Property:        jsonCfg.Property,
		SkipMissing:     jsonCfg.SkipMissing,
		UpdateExtension: jsonCfg.UpdateExtension,
		Extension:       jsonCfg.Extension,
		Policy:          jsonCfg.Policy,
		Source: SourceArgs{
			Type:   jsonCfg.Source.Type,
			Path:   jsonCfg.Source.Path,
			Repo:   jsonCfg.Source.Repo,
			Ref:    jsonCfg.Source.Ref,
			Ignore: jsonCfg.Source.Ignore,
		},
		Output: jsonCfg.Output,
		Async:  jsonCfg.Async,
	}

	return cfg, nil
}
