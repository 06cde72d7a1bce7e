package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/remime/pkg/config"
)

func TestSource_Items(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.jsonl")
	content := `{"json":{"n":1},"binary":{"data":{"mimeType":"text/plain","fileName":"a.txt"}}}
{"json":{"n":2}}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	src, err := New(context.Background(), config.SourceArgs{Type: "jsonl", Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, src.Describe())

	items, err := src.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "text/plain", items[0].Binary["data"].MimeType)
	assert.Empty(t, items[1].Binary)
}

func TestSource_Items_MissingFile(t *testing.T) {
	src, err := New(context.Background(), config.SourceArgs{Type: "jsonl", Path: "does-not-exist.jsonl"})
	require.NoError(t, err)

	_, err = src.Items(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading items file")
}
