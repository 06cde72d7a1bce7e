package operation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/item"
	"github.com/walteh/remime/pkg/status"
)

type sliceSource struct {
	items []item.Item
}

func (s *sliceSource) Items(ctx context.Context) ([]item.Item, error) { return s.items, nil }
func (s *sliceSource) Describe() string                               { return "in-memory" }

func TestNew_Validation(t *testing.T) {
	cfg := pdfConfig(t, nil)
	src := &sliceSource{}
	reporter := newReporter()

	tests := []struct {
		name      string
		opts      Options
		wantError string
	}{
		{name: "missing_config", opts: Options{Source: src, Reporter: reporter}, wantError: "config is required"},
		{name: "missing_source", opts: Options{Config: cfg, Reporter: reporter}, wantError: "source is required"},
		{name: "missing_reporter", opts: Options{Config: cfg, Source: src}, wantError: "reporter is required"},
		{name: "complete", opts: Options{Config: cfg, Source: src, Reporter: reporter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := New(tt.opts)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, op)
		})
	}
}

func TestOperator_Apply(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.json")
	cfg := pdfConfig(t, func(c *config.Config) { c.Output = output })

	src := &sliceSource{items: []item.Item{
		itemWith("data", &item.Attachment{MimeType: "image/jpeg", FileName: "photo.jpeg", Data: "Zm9v"}),
	}}

	op, err := New(Options{Config: cfg, Source: src, Reporter: newReporter()})
	require.NoError(t, err)
	require.NoError(t, op.Apply(context.Background()))

	written, err := item.Load(context.Background(), output)
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "application/pdf", written[0].Binary["data"].MimeType)
	assert.Equal(t, "photo.pdf", written[0].Binary["data"].FileName)
	assert.Equal(t, "Zm9v", written[0].Binary["data"].Data)
}

func TestOperator_Preview(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.json")
	cfg := pdfConfig(t, func(c *config.Config) { c.Output = output })

	src := &sliceSource{items: []item.Item{
		itemWith("data", &item.Attachment{MimeType: "image/jpeg", FileName: "photo.jpeg"}),
	}}

	op, err := New(Options{Config: cfg, Source: src, Reporter: newReporter()})
	require.NoError(t, err)

	infos, err := op.Preview(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, status.StatusRenamed, infos[0].Status)
	assert.Equal(t, "photo.pdf", infos[0].NewFileName)

	assert.NoFileExists(t, output, "preview must not write output")
}
