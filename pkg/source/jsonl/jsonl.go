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

package jsonl

import (
	"context"

	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"github.com/walteh/remime/pkg/source"
)

func init() {
	source.Register("jsonl", New)
}

// 🎯 Source reads items from a local JSON or JSONL document
type Source struct {
	path string
}

// 🏭 New creates a new document source
func New(ctx context.Context, args config.SourceArgs) (source.Source, error) {
	return &Source{path: args.Path}, nil
}

// 📂 Items loads the item list from the document
func (s *Source) Items(ctx context.Context) ([]item.Item, error) {
	return item.Load(ctx, s.path)
}

// 📝 Describe returns the document path
func (s *Source) Describe() string {
	return s.path
}
