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

package github

import (
	"context"
	"encoding/base64"
	"os"
	"path"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"github.com/walteh/remime/pkg/rename"
	"github.com/walteh/remime/pkg/source"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

func init() {
	source.Register("github", New)
}

// fetchConcurrency bounds parallel blob downloads per run
const fetchConcurrency = 4

// 🎯 Source materializes items from files under a path of a GitHub
// repository at a given ref
type Source struct {
	client *github.Client
	args   config.SourceArgs
}

// 🏭 New creates a new GitHub source
func New(ctx context.Context, args config.SourceArgs) (source.Source, error) {
	// Get token from environment
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN environment variable not set")
	}

	// Create OAuth2 client
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Source{
		client: github.NewClient(tc),
		args:   args,
	}, nil
}

// 🔍 parseRepo parses a GitHub repository URL
func parseRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) < 2 {
		return "", "", errors.Errorf("invalid repository format: %s", repo)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// 📂 Items lists the blobs under the configured path and fetches their
// contents concurrently
func (s *Source) Items(ctx context.Context) ([]item.Item, error) {
	logger := zerolog.Ctx(ctx)

	owner, name, err := parseRepo(s.args.Repo)
	if err != nil {
		return nil, errors.Errorf("parsing repo: %w", err)
	}

	// Get repository tree
	tree, _, err := s.client.Git.GetTree(ctx, owner, name, s.args.Ref, true)
	if err != nil {
		return nil, errors.Errorf("getting repository tree: %w", err)
	}

	var blobs []*github.TreeEntry
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		if !underPath(entry.GetPath(), s.args.Path) {
			continue
		}
		blobs = append(blobs, entry)
	}
	logger.Debug().Int("files", len(blobs)).Str("path", s.args.Path).Msg("listing repository files")

	items := make([]item.Item, len(blobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, entry := range blobs {
		i, entry := i, entry
		g.Go(func() error {
			data, _, err := s.client.Git.GetBlobRaw(gctx, owner, name, entry.GetSHA())
			if err != nil {
				return errors.Errorf("fetching blob %s: %w", entry.GetPath(), err)
			}
			items[i] = blobItem(entry.GetPath(), data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

// 📝 Describe returns repo@ref:path
func (s *Source) Describe() string {
	return s.args.Repo + "@" + s.args.Ref + ":" + s.args.Path
}

// underPath reports whether file sits at or below root
func underPath(file, root string) bool {
	if file == root {
		return true
	}
	return strings.HasPrefix(file, strings.TrimSuffix(root, "/")+"/")
}

func blobItem(filePath string, data []byte) item.Item {
	name := path.Base(filePath)

	directory := path.Dir(filePath)
	if directory == "." {
		directory = ""
	}

	return item.Item{
		ID:   uuid.NewString(),
		JSON: map[string]any{"path": filePath},
		Binary: map[string]*item.Attachment{
			"data": {
				MimeType:      "application/octet-stream",
				FileName:      name,
				FileExtension: rename.NormalizeExtension(path.Ext(name)),
				FileSize:      int64(len(data)),
				Directory:     directory,
				Data:          base64.StdEncoding.EncodeToString(data),
			},
		},
	}
}
