package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	ini "github.com/vaughan0/go-ini"

	"github.com/leocov-dev/pzpack/core"
)

const (
	DefaultSection = "DEFAULT"
	ModsSection    = "MODS"
)

type configFile struct {
	Default configDefaults `mapstructure:"DEFAULT"`
	Mods    configMods     `mapstructure:"MODS"`
}

type configDefaults struct {
	Name        string `mapstructure:"name"`
	Source      string `mapstructure:"source"`
	Destination string `mapstructure:"destination"`
	Layout      string `mapstructure:"layout"`
	ModIDs      string `mapstructure:"mod_ids"`
	Ignore      string `mapstructure:"ignore"`
}

type configMods struct {
	ModIDs string `mapstructure:"mod_ids"`
	Ignore string `mapstructure:"ignore"`
}

// LoadConfig reads the configuration file at path. Files ending in .toml are
// parsed as TOML, everything else as INI. A missing file yields an empty Config.
func LoadConfig(path string) (core.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("No config file, using empty defaults")
			return core.Config{}, nil
		}
		return core.Config{}, err
	}

	var sections map[string]interface{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		sections, err = parseTomlSections(raw)
	} else {
		sections, err = parseIniSections(string(raw))
	}
	if err != nil {
		return core.Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg, err := decodeSections(sections)
	if err != nil {
		return core.Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Strs("mod_ids", cfg.ModIDs).Msg("Loaded config")
	return cfg, nil
}

func parseIniSections(text string) (map[string]interface{}, error) {
	file, err := ini.Load(strings.NewReader(normalizeIni(text)))
	if err != nil {
		return nil, err
	}

	sections := make(map[string]interface{}, len(file))
	merge := func(name string, section ini.Section) {
		target, ok := sections[name].(map[string]interface{})
		if !ok {
			target = make(map[string]interface{}, len(section))
			sections[name] = target
		}
		for k, v := range section {
			target[k] = v
		}
	}

	// Keys above the first header belong to the default section; an explicit
	// [DEFAULT] header is merged afterwards so it wins
	merge(DefaultSection, file[""])
	for name, section := range file {
		if name == "" {
			continue
		}
		merge(name, section)
	}
	return sections, nil
}

// normalizeIni rewrites configparser syntax the ini reader does not accept:
// "key: value" assignments and indented continuation lines, which are folded
// into the previous value separated by a comma.
func normalizeIni(text string) string {
	var lines []string
	keyLine := -1
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)

		if len(trimmed) == 0 {
			keyLine = -1
			lines = append(lines, line)
			continue
		}
		if trimmed[0] == ';' || trimmed[0] == '#' {
			lines = append(lines, line)
			continue
		}
		if keyLine >= 0 && (line[0] == ' ' || line[0] == '\t') {
			lines[keyLine] = strings.TrimRight(lines[keyLine], " \t") + "," + trimmed
			continue
		}
		if trimmed[0] == '[' {
			keyLine = -1
			lines = append(lines, line)
			continue
		}

		// The first delimiter wins, so "source = C:\mods" keeps its colon
		colon := strings.Index(line, ":")
		equals := strings.Index(line, "=")
		if colon >= 0 && (equals < 0 || colon < equals) {
			line = line[:colon] + "=" + line[colon+1:]
		}
		keyLine = len(lines)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func parseTomlSections(raw []byte) (map[string]interface{}, error) {
	var sections map[string]interface{}
	if err := toml.Unmarshal(raw, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func decodeSections(sections map[string]interface{}) (core.Config, error) {
	var file configFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       joinListHook,
		WeaklyTypedInput: true,
		Result:           &file,
	})
	if err != nil {
		return core.Config{}, err
	}
	if err := decoder.Decode(sections); err != nil {
		return core.Config{}, err
	}

	// MODS inherits from DEFAULT, like any other INI section
	modIDs := file.Mods.ModIDs
	if len(modIDs) == 0 {
		modIDs = file.Default.ModIDs
	}
	ignore := file.Mods.Ignore
	if len(ignore) == 0 {
		ignore = file.Default.Ignore
	}

	return core.Config{
		Name:        strings.TrimSpace(file.Default.Name),
		Source:      strings.TrimSpace(file.Default.Source),
		Destination: strings.TrimSpace(file.Default.Destination),
		Layout:      strings.TrimSpace(file.Default.Layout),
		ModIDs:      core.SplitList(modIDs),
		Ignore:      core.SplitList(ignore),
	}, nil
}

// joinListHook lets TOML arrays stand in for comma separated strings
func joinListHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String || from.Kind() != reflect.Slice {
		return data, nil
	}
	value := reflect.ValueOf(data)
	parts := make([]string, value.Len())
	for i := 0; i < value.Len(); i++ {
		parts[i] = fmt.Sprint(value.Index(i).Interface())
	}
	return strings.Join(parts, ","), nil
}
