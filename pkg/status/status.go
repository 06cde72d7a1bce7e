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

package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 AttachmentStatus represents what happened to one attachment
type AttachmentStatus int

const (
	StatusUnknown AttachmentStatus = iota
	StatusRetyped                  // MIME type replaced, filename untouched
	StatusRenamed                  // MIME type replaced and filename rewritten
	StatusSkipped                  // Item had no matching attachment and skip_missing is on
)

// String returns a string representation of AttachmentStatus
func (s AttachmentStatus) String() string {
	switch s {
	case StatusRetyped:
		return "retyped"
	case StatusRenamed:
		return "renamed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 📄 AttachmentInfo describes one attachment transformation
type AttachmentInfo struct {
	ItemIndex    int              // Position of the item in the input list
	Property     string           // Binary property name the attachment lives under
	Status       AttachmentStatus // What happened
	OldMimeType  string           // MIME type before the rewrite
	NewMimeType  string           // MIME type after the rewrite
	OldFileName  string           // Filename before the rewrite
	NewFileName  string           // Filename after the rewrite
	NewExtension string           // Normalized extension written to the metadata
	Error        error            // Any error associated with this attachment
}

// 📈 Reporter tracks attachment transformations and reports progress
type Reporter interface {
	// Status tracking
	TrackAttachment(ctx context.Context, info AttachmentInfo)
	ListAttachments(ctx context.Context) []AttachmentInfo

	// Progress reporting
	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements Reporter
type Manager struct {
	logger    *zerolog.Logger     // Logger for status updates
	formatter AttachmentFormatter // Formatter for status messages

	// Status tracking
	mu      sync.RWMutex
	tracked []AttachmentInfo

	// Progress tracking
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger:    logger,
		formatter: NewDefaultAttachmentFormatter(),
	}
}

func (m *Manager) TrackAttachment(ctx context.Context, info AttachmentInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tracked = append(m.tracked, info)
	m.logger.Info().Msg(m.formatter.FormatAttachmentOperation(info))
}

func (m *Manager) ListAttachments(ctx context.Context) []AttachmentInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]AttachmentInfo, len(m.tracked))
	copy(out, m.tracked)
	return out
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	m.logger.Debug().Int("total", total).Msg("starting operation")
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	m.logger.Debug().Msg(m.formatter.FormatProgress(processed, m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug().Msg(m.formatter.FormatProgress(m.total, m.total))
}
