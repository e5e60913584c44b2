package utils

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leocov-dev/pzpack/cmd"
)

func TestMarkdownCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	out := &bytes.Buffer{}
	root := cmd.Root()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"utils", "markdown", "--dir", dir, "--config", filepath.Join(t.TempDir(), "missing.ini")})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Generated markdown successfully!")
	assert.FileExists(t, filepath.Join(dir, "pzpack.md"))
	assert.FileExists(t, filepath.Join(dir, "pzpack_utils_markdown.md"))
}
