package operation

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"github.com/walteh/remime/pkg/status"
)

func newReporter() *status.Manager {
	logger := zerolog.Nop()
	return status.New(&logger)
}

func pdfConfig(t *testing.T, mutate func(*config.Config)) *config.Config {
	t.Helper()
	cfg := &config.Config{
		MimeType:        "application/pdf",
		UpdateExtension: true,
		Extension:       ".pdf",
		Policy:          "smart",
		Source:          config.SourceArgs{Type: "jsonl", Path: "items.jsonl"},
	}
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func itemWith(property string, att *item.Attachment) item.Item {
	return item.Item{
		JSON:   map[string]any{},
		Binary: map[string]*item.Attachment{property: att},
	}
}

func TestProcessItems_SmartRename(t *testing.T) {
	cfg := pdfConfig(t, nil)
	items := []item.Item{
		itemWith("data", &item.Attachment{
			MimeType:      "image/jpeg",
			FileName:      "photo.jpeg",
			FileExtension: "jpeg",
			FileSize:      120,
			Directory:     "inbox",
			Data:          "aGVsbG8=",
		}),
	}

	out, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.NoError(t, err)
	require.Len(t, out, 1)

	att := out[0].Binary["data"]
	assert.Equal(t, "application/pdf", att.MimeType)
	assert.Equal(t, "photo.pdf", att.FileName)
	assert.Equal(t, "pdf", att.FileExtension)

	// passthrough fields untouched
	assert.Equal(t, "aGVsbG8=", att.Data)
	assert.Equal(t, int64(120), att.FileSize)
	assert.Equal(t, "inbox", att.Directory)
}

func TestProcessItems_LeaveKeepsFileName(t *testing.T) {
	cfg := pdfConfig(t, func(c *config.Config) { c.Policy = "leave" })
	items := []item.Item{
		itemWith("data", &item.Attachment{MimeType: "image/jpeg", FileName: "photo.jpeg", FileExtension: "jpeg"}),
	}

	out, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.NoError(t, err)

	att := out[0].Binary["data"]
	assert.Equal(t, "photo.jpeg", att.FileName, "leave never touches the filename string")
	assert.Equal(t, "pdf", att.FileExtension, "extension metadata is still updated")
	assert.Equal(t, "application/pdf", att.MimeType)
}

func TestProcessItems_ForceEmptyFileName(t *testing.T) {
	cfg := pdfConfig(t, func(c *config.Config) {
		c.Policy = "force"
		c.Extension = "txt"
	})
	items := []item.Item{
		itemWith("data", &item.Attachment{MimeType: "application/octet-stream"}),
	}

	out, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.NoError(t, err)
	assert.Equal(t, "file.txt", out[0].Binary["data"].FileName)
}

func TestProcessItems_MimeOnly(t *testing.T) {
	cfg := pdfConfig(t, func(c *config.Config) {
		c.UpdateExtension = false
		c.Extension = ""
	})
	items := []item.Item{
		itemWith("data", &item.Attachment{MimeType: "image/jpeg", FileName: "photo.jpeg", FileExtension: "jpeg"}),
	}

	reporter := newReporter()
	out, err := ProcessItems(context.Background(), cfg, items, reporter)
	require.NoError(t, err)

	att := out[0].Binary["data"]
	assert.Equal(t, "application/pdf", att.MimeType)
	assert.Equal(t, "photo.jpeg", att.FileName)
	assert.Equal(t, "jpeg", att.FileExtension, "extension metadata untouched without update_extension")

	infos := reporter.ListAttachments(context.Background())
	require.Len(t, infos, 1)
	assert.Equal(t, status.StatusRetyped, infos[0].Status)
}

func TestProcessItems_MissingAttachmentIsFatal(t *testing.T) {
	cfg := pdfConfig(t, nil)
	items := []item.Item{
		itemWith("data", &item.Attachment{MimeType: "text/plain", FileName: "a.txt"}),
		{JSON: map[string]any{}},
	}

	_, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `item 1 has no binary attachment matching "data"`)
}

func TestProcessItems_SkipMissingPassesThrough(t *testing.T) {
	cfg := pdfConfig(t, func(c *config.Config) { c.SkipMissing = true })
	items := []item.Item{
		{JSON: map[string]any{"n": 1}},
		itemWith("data", &item.Attachment{MimeType: "text/plain", FileName: "a.txt"}),
	}

	reporter := newReporter()
	out, err := ProcessItems(context.Background(), cfg, items, reporter)
	require.NoError(t, err)
	require.Len(t, out, 2, "skipped item still appears in the output")
	assert.Empty(t, out[0].Binary)
	assert.Equal(t, "a.pdf", out[1].Binary["data"].FileName)

	infos := reporter.ListAttachments(context.Background())
	require.Len(t, infos, 2)
	assert.Equal(t, status.StatusSkipped, infos[0].Status)
	assert.Equal(t, 0, infos[0].ItemIndex)
	assert.Equal(t, status.StatusRenamed, infos[1].Status)
}

func TestProcessItems_NullAttachmentIsMissing(t *testing.T) {
	cfg := pdfConfig(t, nil)
	items := []item.Item{
		itemWith("data", nil),
	}

	_, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 0")
}

func TestProcessItems_GlobSelector(t *testing.T) {
	cfg := pdfConfig(t, func(c *config.Config) { c.Property = "attachment_*" })
	items := []item.Item{
		{
			JSON: map[string]any{},
			Binary: map[string]*item.Attachment{
				"attachment_0": {MimeType: "image/jpeg", FileName: "a.jpeg"},
				"attachment_1": {MimeType: "image/gif", FileName: "b.gif"},
				"thumbnail":    {MimeType: "image/png", FileName: "thumb.png"},
			},
		},
	}

	out, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", out[0].Binary["attachment_0"].MimeType)
	assert.Equal(t, "a.pdf", out[0].Binary["attachment_0"].FileName)
	assert.Equal(t, "application/pdf", out[0].Binary["attachment_1"].MimeType)
	assert.Equal(t, "image/png", out[0].Binary["thumbnail"].MimeType, "non-matching attachment untouched")
	assert.Equal(t, "thumb.png", out[0].Binary["thumbnail"].FileName)
}

func TestProcessItems_BadSelectorPattern(t *testing.T) {
	cfg := pdfConfig(t, nil)
	cfg.Property = "[unclosed"
	items := []item.Item{
		itemWith("data", &item.Attachment{MimeType: "text/plain"}),
	}

	_, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matching property pattern")
}

func TestProcessItems_InputNotMutated(t *testing.T) {
	cfg := pdfConfig(t, nil)
	orig := &item.Attachment{MimeType: "image/jpeg", FileName: "photo.jpeg", FileExtension: "jpeg"}
	items := []item.Item{itemWith("data", orig)}

	out, err := ProcessItems(context.Background(), cfg, items, newReporter())
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", orig.MimeType, "input attachment must not be mutated")
	assert.Equal(t, "photo.jpeg", orig.FileName)
	assert.NotSame(t, orig, out[0].Binary["data"])
}
