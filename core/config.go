package core

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Config stores the settings read from config.ini (or its TOML equivalent)
type Config struct {
	Name        string
	Source      string
	Destination string
	Layout      string
	ModIDs      []string
	Ignore      []string
}

// SplitList splits a comma separated value, trimming each entry and dropping
// empty and repeated entries while keeping the original order.
func SplitList(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if len(part) == 0 || slices.Contains(result, part) {
			continue
		}
		result = append(result, part)
	}
	return result
}

// AsMap exposes the scalar settings in the shape viper.MergeConfigMap expects
func (c Config) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"name":        c.Name,
		"source":      c.Source,
		"destination": c.Destination,
		"layout":      c.Layout,
		"mod-ids":     c.ModIDs,
		"ignore":      c.Ignore,
	}
}
