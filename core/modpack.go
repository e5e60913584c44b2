package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const DefaultModpackName = "default_modpack"

// Modpack stores the location of a modpack tree, rooted at destination/name
type Modpack struct {
	Name        string
	Destination string
	Layout      Layout
}

func NewModpack(destination string, name string, layout Layout) *Modpack {
	if len(name) == 0 {
		name = DefaultModpackName
	}
	return &Modpack{
		Name:        name,
		Destination: destination,
		Layout:      layout,
	}
}

// GetRoot returns destination/name
func (m *Modpack) GetRoot() string {
	return filepath.Join(m.Destination, m.Name)
}

// GetContentDir returns the directory mods are merged into, always inside the root
func (m *Modpack) GetContentDir() string {
	return filepath.Join(m.GetRoot(), "Contents", "mods")
}

func (m *Modpack) GetDescriptorPath() string {
	return filepath.Join(m.GetRoot(), m.Layout.DescriptorFile)
}

// Exists reports whether the modpack root is present on disk
func (m *Modpack) Exists() (bool, error) {
	_, err := os.Stat(m.GetRoot())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("error checking modpack %s: %w", m.GetRoot(), err)
}
