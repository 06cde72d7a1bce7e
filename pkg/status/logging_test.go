package status

import (
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func newTestUserLogger(t *testing.T) (*UserLogger, *bytes.Buffer) {
	t.Helper()
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	ctx := logger.WithContext(context.Background())
	return NewUserLogger(ctx), buf
}

func TestUserLogger_LogAttachmentChange(t *testing.T) {
	tests := []struct {
		name      string
		info      AttachmentInfo
		wantMsg   string
		wantLevel string
	}{
		{
			name: "renamed_logs_old_and_new_name",
			info: AttachmentInfo{
				ItemIndex:   0,
				Property:    "data",
				Status:      StatusRenamed,
				OldFileName: "photo.jpeg",
				NewFileName: "photo.png",
			},
			wantMsg:   "Renamed item 0 (data)",
			wantLevel: `"level":"info"`,
		},
		{
			name: "retyped_logs_mime_change",
			info: AttachmentInfo{
				ItemIndex:   1,
				Property:    "data",
				Status:      StatusRetyped,
				OldMimeType: "text/plain",
				NewMimeType: "application/pdf",
			},
			wantMsg:   "Retyped item 1 (data): text/plain → application/pdf",
			wantLevel: `"level":"info"`,
		},
		{
			name:      "skipped_logs_item_index",
			info:      AttachmentInfo{ItemIndex: 2, Status: StatusSkipped},
			wantMsg:   "Skipped item 2",
			wantLevel: `"level":"info"`,
		},
		{
			name: "error_logs_at_error_level",
			info: AttachmentInfo{
				ItemIndex: 3,
				Property:  "data",
				Status:    StatusRetyped,
				Error:     errors.New("boom"),
			},
			wantMsg:   "Retyped item 3 (data)",
			wantLevel: `"level":"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, buf := newTestUserLogger(t)

			u.LogAttachmentChange(tt.info)

			out := buf.String()
			assert.Contains(t, out, tt.wantMsg)
			assert.Contains(t, out, tt.wantLevel)
		})
	}
}

func TestUserLogger_LogRunChange(t *testing.T) {
	u, buf := newTestUserLogger(t)

	u.LogRunChange("Rewrote 3 attachments")

	assert.Contains(t, buf.String(), "Rewrote 3 attachments")
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestUserLogger_LogValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, buf := newTestUserLogger(t)

		u.LogValidation(true, "Config loaded", nil)

		assert.Contains(t, buf.String(), "Config loaded")
		assert.Contains(t, buf.String(), `"level":"info"`)
	})

	t.Run("invalid_with_error", func(t *testing.T) {
		u, buf := newTestUserLogger(t)

		u.LogValidation(false, "Command failed", errors.New("bad config"))

		assert.Contains(t, buf.String(), "Command failed")
		assert.Contains(t, buf.String(), "bad config")
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("invalid_without_error", func(t *testing.T) {
		u, buf := newTestUserLogger(t)

		u.LogValidation(false, "Nothing matched", nil)

		assert.Contains(t, buf.String(), "Nothing matched")
		assert.Contains(t, buf.String(), `"level":"warn"`)
	})
}
