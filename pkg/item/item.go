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

import "sort"

// 📎 Attachment is the metadata bundle for one binary payload carried by a
// pipeline item. Data references the payload itself (inline base64 or an
// external storage id) and is always passed through untouched.
type Attachment struct {
	MimeType      string `json:"mimeType"`
	FileName      string `json:"fileName,omitempty"`
	FileExtension string `json:"fileExtension,omitempty"`
	FileSize      int64  `json:"fileSize,omitempty"`
	Directory     string `json:"directory,omitempty"`
	Data          string `json:"data,omitempty"`
	ID            string `json:"id,omitempty"`
}

// 📦 Clone returns an independent copy of the attachment. Metadata updates
// replace the attachment on the item rather than mutating a shared value.
func (a *Attachment) Clone() *Attachment {
	if a == nil {
		return nil
	}
	dup := *a
	return &dup
}

// 🎯 Item is one unit of work flowing through the pipeline: a free-form JSON
// payload plus zero or more named binary attachments.
type Item struct {
	ID     string                 `json:"id,omitempty"`
	JSON   map[string]any         `json:"json"`
	Binary map[string]*Attachment `json:"binary,omitempty"`
}

// Clone copies the item with an independent binary map and independent
// attachments. The JSON payload is shared; nothing in this module writes to it.
func (it Item) Clone() Item {
	out := it
	if it.Binary != nil {
		out.Binary = make(map[string]*Attachment, len(it.Binary))
		for key, att := range it.Binary {
			out.Binary[key] = att.Clone()
		}
	}
	return out
}

// BinaryKeys returns the item's attachment names in stable order.
func (it Item) BinaryKeys() []string {
	keys := make([]string, 0, len(it.Binary))
	for key := range it.Binary {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
