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

package dir

import (
	"context"
	"encoding/base64"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"github.com/walteh/remime/pkg/rename"
	"github.com/walteh/remime/pkg/source"
	"gitlab.com/tozd/go/errors"
)

func init() {
	source.Register("dir", New)
}

// 🎯 Source walks a local directory and turns every file into one item
// carrying a single "data" attachment. Attachments start as
// application/octet-stream; this source never inspects content.
type Source struct {
	root   string
	ignore []string
}

// 🏭 New creates a new directory source
func New(ctx context.Context, args config.SourceArgs) (source.Source, error) {
	return &Source{
		root:   filepath.Clean(args.Path),
		ignore: args.Ignore,
	}, nil
}

// 📂 Items walks the directory tree in lexical order
func (s *Source) Items(ctx context.Context) ([]item.Item, error) {
	logger := zerolog.Ctx(ctx)

	var items []item.Item
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return errors.Errorf("resolving relative path: %w", err)
		}
		rel = filepath.ToSlash(rel)

		ignored, err := s.isIgnored(rel)
		if err != nil {
			return err
		}
		if ignored {
			logger.Debug().Str("file", rel).Msg("ignoring file")
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Errorf("reading file %s: %w", rel, err)
		}

		items = append(items, fileItem(rel, data))
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", s.root, err)
	}

	return items, nil
}

// 🔍 isIgnored checks the relative path against the ignore globs
func (s *Source) isIgnored(rel string) (bool, error) {
	for _, pattern := range s.ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, errors.Errorf("matching ignore pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// 📝 Describe returns the directory root
func (s *Source) Describe() string {
	return s.root + string(os.PathSeparator)
}

func fileItem(rel string, data []byte) item.Item {
	name := filepath.Base(rel)
	ext := rename.NormalizeExtension(filepath.Ext(name))

	directory := filepath.ToSlash(filepath.Dir(rel))
	if directory == "." {
		directory = ""
	}

	return item.Item{
		ID:   uuid.NewString(),
		JSON: map[string]any{"path": rel},
		Binary: map[string]*item.Attachment{
			"data": {
				MimeType:      "application/octet-stream",
				FileName:      name,
				FileExtension: ext,
				FileSize:      int64(len(data)),
				Directory:     directory,
				Data:          base64.StdEncoding.EncodeToString(data),
			},
		},
	}
}
