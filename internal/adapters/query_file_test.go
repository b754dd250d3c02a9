package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFileAdapterReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tensorflow-base.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tensorflow-base": []}`), 0o644))

	out, err := NewQueryFileAdapter(path).Query(context.Background(), "tensorflow-base")
	require.NoError(t, err)
	assert.Equal(t, `{"tensorflow-base": []}`, string(out))
}

func TestQueryFileAdapterReadsStdin(t *testing.T) {
	adapter := QueryFileAdapter{Path: "-", Stdin: strings.NewReader(`{"pytorch": []}`)}
	out, err := adapter.Query(context.Background(), "pytorch")
	require.NoError(t, err)
	assert.Equal(t, `{"pytorch": []}`, string(out))
}

func TestQueryFileAdapterMissingFile(t *testing.T) {
	_, err := NewQueryFileAdapter(filepath.Join(t.TempDir(), "missing.json")).Query(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestQueryFileAdapterEmptyPath(t *testing.T) {
	_, err := QueryFileAdapter{}.Query(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestQueryFileAdapterDirectoryIsReadError(t *testing.T) {
	_, err := NewQueryFileAdapter(t.TempDir()).Query(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
