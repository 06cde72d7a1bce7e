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

package item

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 Load reads an item list from a document on disk. The format is
// determined by the file extension:
// - .json for a single JSON array of items
// - .jsonl or .ndjson for one item per line
func Load(ctx context.Context, path string) ([]Item, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading items")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading items file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return decodeArray(data)
	case ".jsonl", ".ndjson":
		return decodeLines(data)
	default:
		return nil, errors.Errorf("unsupported items file extension %q", ext)
	}
}

// 📤 Write persists an item list atomically (temp file + rename), using the
// same extension rules as Load.
func Write(ctx context.Context, path string, items []Item) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Int("items", len(items)).Msg("writing items")

	var buf bytes.Buffer
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = Encode(&buf, items)
	case ".jsonl", ".ndjson":
		err = EncodeLines(&buf, items)
	default:
		return errors.Errorf("unsupported items file extension %q", ext)
	}
	if err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, buf.Bytes(), 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Encode writes the items as an indented JSON array.
func Encode(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return errors.Errorf("encoding items: %w", err)
	}
	return nil
}

// EncodeLines writes the items as newline-delimited JSON.
func EncodeLines(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	for i, it := range items {
		if err := enc.Encode(it); err != nil {
			return errors.Errorf("encoding item %d: %w", i, err)
		}
	}
	return nil
}

func decodeArray(data []byte) ([]Item, error) {
	var items []Item
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&items); err != nil {
		return nil, errors.Errorf("parsing items JSON: %w", err)
	}
	return items, nil
}

func decodeLines(data []byte) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var it Item
		if err := json.Unmarshal([]byte(text), &it); err != nil {
			return nil, errors.Errorf("parsing item on line %d: %w", line, err)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("scanning items: %w", err)
	}

	return items, nil
}
