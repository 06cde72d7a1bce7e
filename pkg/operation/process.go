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

package operation

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"github.com/walteh/remime/pkg/rename"
	"github.com/walteh/remime/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📋 ProcessItems rewrites attachment metadata on every item according to
// the config. Input items are never mutated; transformed items carry fresh
// attachment values. Payload data is passed through untouched.
//
// An item with no attachment matching the selector is a fatal error naming
// the item index, unless skip_missing is enabled, in which case the item
// passes through unchanged.
func ProcessItems(ctx context.Context, cfg *config.Config, items []item.Item, reporter status.Reporter) ([]item.Item, error) {
	policy := cfg.RewritePolicy()
	ext := rename.NormalizeExtension(cfg.Extension)

	reporter.StartOperation(ctx, len(items))

	out := make([]item.Item, 0, len(items))
	for i, it := range items {
		keys, err := matchingKeys(cfg.Property, it)
		if err != nil {
			return nil, err
		}

		if len(keys) == 0 {
			if !cfg.SkipMissing {
				return nil, errors.Errorf("item %d has no binary attachment matching %q", i, cfg.Property)
			}
			reporter.TrackAttachment(ctx, status.AttachmentInfo{
				ItemIndex: i,
				Status:    status.StatusSkipped,
			})
			out = append(out, it)
			reporter.UpdateProgress(ctx, i+1)
			continue
		}

		next := it.Clone()
		for _, key := range keys {
			att := next.Binary[key]

			info := status.AttachmentInfo{
				ItemIndex:   i,
				Property:    key,
				Status:      status.StatusRetyped,
				OldMimeType: att.MimeType,
				NewMimeType: cfg.MimeType,
				OldFileName: att.FileName,
			}

			att.MimeType = cfg.MimeType
			if cfg.UpdateExtension {
				newName := rename.Rewrite(att.FileName, ext, policy)
				if newName != att.FileName {
					info.Status = status.StatusRenamed
				}
				att.FileName = newName
				att.FileExtension = ext
				info.NewExtension = ext
			}
			info.NewFileName = att.FileName

			reporter.TrackAttachment(ctx, info)
		}

		out = append(out, next)
		reporter.UpdateProgress(ctx, i+1)
	}

	reporter.FinishOperation(ctx)
	return out, nil
}

// 🔍 matchingKeys returns the item's attachment names matching the selector
// glob, in stable order. Null attachments never match.
func matchingKeys(pattern string, it item.Item) ([]string, error) {
	var keys []string
	for _, key := range it.BinaryKeys() {
		if it.Binary[key] == nil {
			continue
		}
		matched, err := doublestar.Match(pattern, key)
		if err != nil {
			return nil, errors.Errorf("matching property pattern %q: %w", pattern, err)
		}
		if matched {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
