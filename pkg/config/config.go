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
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/remime/pkg/rename"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 SourceArgs selects where pipeline items come from
type SourceArgs struct {
	Type   string   // Item source type (jsonl, dir or github)
	Path   string   // Items file, directory, or path within the repo
	Repo   string   // Repository URL for the github source (e.g. github.com/org/repo)
	Ref    string   // Branch or tag for the github source
	Ignore []string // Glob patterns for files the dir source skips
}

// 📚 Config holds the per-run parameters of the MIME rewrite node
type Config struct {
	MimeType        string     // New MIME type, applied verbatim to matching attachments
	Property        string     // Glob matched against an item's binary attachment names
	SkipMissing     bool       // Pass items without a matching attachment through unchanged
	UpdateExtension bool       // Whether to rewrite filename/extension metadata
	Extension       string     // Requested extension (leading dot allowed)
	Policy          string     // Filename rewrite policy (leave, smart or force)
	Source          SourceArgs // Where items come from
	Output          string     // Where transformed items are written (empty means stdout)
	Async           bool       // Whether the operation runs on a background goroutine
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults.
// Extension problems are caught here, before any item is touched.
func (cfg *Config) Validate() error {
	if cfg.MimeType == "" {
		return errors.Errorf("mime_type is required")
	}

	// Set defaults
	if cfg.Property == "" {
		cfg.Property = "data"
	}
	if cfg.Policy == "" {
		cfg.Policy = string(rename.PolicySmart)
	}
	if cfg.Source.Type == "" {
		cfg.Source.Type = "jsonl"
	}

	if _, err := rename.ParsePolicy(cfg.Policy); err != nil {
		return err
	}

	if cfg.UpdateExtension && rename.NormalizeExtension(cfg.Extension) == "" {
		return errors.Errorf("extension is required when update_extension is enabled")
	}

	if cfg.Output != "" {
		switch ext := strings.ToLower(filepath.Ext(cfg.Output)); ext {
		case ".json", ".jsonl", ".ndjson":
		default:
			return errors.Errorf("unsupported output extension %q (want .json, .jsonl or .ndjson)", ext)
		}
	}

	switch cfg.Source.Type {
	case "jsonl", "dir":
		if cfg.Source.Path == "" {
			return errors.Errorf("source.path is required for the %s source", cfg.Source.Type)
		}
	case "github":
		if cfg.Source.Repo == "" {
			return errors.Errorf("source.repo is required for the github source")
		}
		if cfg.Source.Path == "" {
			return errors.Errorf("source.path is required for the github source")
		}
		if cfg.Source.Ref == "" {
			cfg.Source.Ref = "main"
		}
	default:
		return errors.Errorf("unknown source type %q", cfg.Source.Type)
	}

	return nil
}

// RewritePolicy returns the parsed rename policy. Validate must have
// succeeded beforehand.
func (cfg *Config) RewritePolicy() rename.Policy {
	return rename.Policy(cfg.Policy)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	s := cfg.Property + " -> " + cfg.MimeType
	if cfg.UpdateExtension {
		s += " [." + rename.NormalizeExtension(cfg.Extension) + " " + cfg.Policy + "]"
	}
	return s
}
