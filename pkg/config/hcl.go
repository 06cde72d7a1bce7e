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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		MimeType        string `hcl:"mime_type"`
		Property        string `hcl:"property,optional"`
		SkipMissing     bool   `hcl:"skip_missing,optional"`
		UpdateExtension bool   `hcl:"update_extension,optional"`
		Extension       string `hcl:"extension,optional"`
		Policy          string `hcl:"policy,optional"`
		Source          *struct {
			Type   string   `hcl:"type,optional"`
			Path   string   `hcl:"path,optional"`
			Repo   string   `hcl:"repo,optional"`
			Ref    string   `hcl:"ref,optional"`
			Ignore []string `hcl:"ignore,optional"`
		} `hcl:"source,block"`
		Output string `hcl:"output,optional"`
		Async  bool   `hcl:"async,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		MimeType:        hclCfg.MimeType,
		Property:        hclCfg.Property,
		SkipMissing:     hclCfg.SkipMissing,
		UpdateExtension: hclCfg.UpdateExtension,
		Extension:       hclCfg.Extension,
		Policy:          hclCfg.Policy,
		Output:          hclCfg.Output,
		Async:           hclCfg.Async,
	}

	if hclCfg.Source != nil {
		cfg.Source = SourceArgs{
			Type:   hclCfg.Source.Type,
			Path:   hclCfg.Source.Path,
			Repo:   hclCfg.Source.Repo,
			Ref:    hclCfg.Source.Ref,
			Ignore: hclCfg.Source.Ignore,
		}
	}

	return cfg, nil
}
