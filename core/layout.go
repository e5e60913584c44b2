package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Layout describes where a mod's content lives in the source library, where
// it lands in the modpack and which descriptor file the modpack carries.
type Layout struct {
	Name              string
	DescriptorFile    string
	DescriptorContent string
	// Nested layouts read source/<id>/mods and merge its contents straight into
	// the content directory; the others copy source/<id> into <content>/<id>.
	Nested bool
}

const (
	LayoutNameMods     = "mods"
	LayoutNameWorkshop = "workshop"
)

const modInfoTemplate = `name=Mod Template
id=ModTemplate
description=This is an example mod containing two maps.
poster=poster.png`

const workshopTemplate = `version=1
title=Mod Template
description=This is an example mod containing two maps.
tags=
visibility=public`

var LayoutMods = Layout{
	Name:              LayoutNameMods,
	DescriptorFile:    "mod.info",
	DescriptorContent: modInfoTemplate,
	Nested:            true,
}

var LayoutWorkshop = Layout{
	Name:              LayoutNameWorkshop,
	DescriptorFile:    "workshop.txt",
	DescriptorContent: workshopTemplate,
	Nested:            false,
}

var Layouts = map[string]Layout{
	LayoutNameMods:     LayoutMods,
	LayoutNameWorkshop: LayoutWorkshop,
}

// DefaultLayout is used when neither the command line nor the config file picks one
var DefaultLayout = LayoutMods

// ParseLayout looks up a layout by name. An empty name yields DefaultLayout.
func ParseLayout(name string) (Layout, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		return DefaultLayout, nil
	}
	layout, ok := Layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q (expected %q or %q)", name, LayoutNameMods, LayoutNameWorkshop)
	}
	return layout, nil
}

// SourceDir returns the directory whose contents are copied for a mod
func (l Layout) SourceDir(source, modID string) string {
	if l.Nested {
		return filepath.Join(source, modID, "mods")
	}
	return filepath.Join(source, modID)
}

// TargetDir returns the directory a mod's contents are merged into
func (l Layout) TargetDir(contentDir, modID string) string {
	if l.Nested {
		return contentDir
	}
	return filepath.Join(contentDir, modID)
}

func (l Layout) String() string {
	return l.Name
}
