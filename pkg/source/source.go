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

package source

import (
	"context"

	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Source is the interface for pipeline item sources
type Source interface {
	// 📂 Items materializes the items to transform
	Items(ctx context.Context) ([]item.Item, error)

	// 📝 Describe returns a short human-readable description of the source
	Describe() string
}

// 🏭 Factory creates a new source from its config arguments
type Factory func(ctx context.Context, args config.SourceArgs) (Source, error)

var (
	// 🗺️ sources is a map of source type names to factories
	sources = make(map[string]Factory)
)

// 📝 Register registers a source factory
func Register(name string, factory Factory) {
	sources[name] = factory
}

// 🎯 New creates the source selected by the config
func New(ctx context.Context, args config.SourceArgs) (Source, error) {
	factory, ok := sources[args.Type]
	if !ok {
		return nil, errors.Errorf("unknown source type %q", args.Type)
	}
	return factory(ctx, args)
}
