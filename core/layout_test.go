package core

import (
	"path/filepath"
	"testing"

	"github.com/bradleyjkemp/cupaloy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutDescriptors(t *testing.T) {
	for name, layout := range Layouts {
		t.Run(name, func(t *testing.T) {
			cupaloy.SnapshotT(t, layout.DescriptorContent)
		})
	}
}

func TestParseLayout(t *testing.T) {
	layout, err := ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutMods, layout)

	layout, err = ParseLayout(" Workshop ")
	require.NoError(t, err)
	assert.Equal(t, LayoutWorkshop, layout)

	_, err = ParseLayout("zip")
	assert.Error(t, err)
}

func TestLayoutPaths(t *testing.T) {
	content := filepath.Join("dest", "Pack", "Contents", "mods")

	assert.Equal(t, filepath.Join("src", "modA", "mods"), LayoutMods.SourceDir("src", "modA"))
	assert.Equal(t, content, LayoutMods.TargetDir(content, "modA"))

	assert.Equal(t, filepath.Join("src", "modA"), LayoutWorkshop.SourceDir("src", "modA"))
	assert.Equal(t, filepath.Join(content, "modA"), LayoutWorkshop.TargetDir(content, "modA"))
}
