package shared

import (
	"io"

	"github.com/spf13/viper"

	"github.com/leocov-dev/pzpack/core"
	"github.com/leocov-dev/pzpack/fileio"
	"github.com/leocov-dev/pzpack/modpack"
)

// Settings is the merged view of command flags and the config file
type Settings struct {
	Source      string
	Destination string
	Name        string
	Layout      core.Layout
	ModIDs      []string
	Ignore      []string
}

// LoadConfigFile reads the file named by --config and merges it into viper
func LoadConfigFile() error {
	cfg, err := fileio.LoadConfig(viper.GetString("config"))
	if err != nil {
		return err
	}
	return viper.MergeConfigMap(cfg.AsMap())
}

// GetSettings resolves settings for a command; flags registered under the
// command's key prefix win over config file values.
func GetSettings(command string) (Settings, error) {
	pick := func(key string) string {
		if value := viper.GetString(command + "." + key); len(value) > 0 {
			return value
		}
		return viper.GetString(key)
	}

	layout, err := core.ParseLayout(viper.GetString("layout"))
	if err != nil {
		return Settings{}, err
	}

	name := pick("name")
	if len(name) == 0 {
		name = core.DefaultModpackName
	}

	return Settings{
		Source:      pick("source"),
		Destination: pick("destination"),
		Name:        name,
		Layout:      layout,
		ModIDs:      viper.GetStringSlice("mod-ids"),
		Ignore:      viper.GetStringSlice("ignore"),
	}, nil
}

// GetOptions turns settings into lifecycle options writing messages to out
func (s Settings) GetOptions(out io.Writer) (modpack.Options, error) {
	opts := modpack.Options{
		Source:      s.Source,
		Destination: s.Destination,
		Name:        s.Name,
		Layout:      s.Layout,
		ModIDs:      s.ModIDs,
		Out:         out,
	}
	if len(s.Source) > 0 {
		ignore, err := fileio.LoadIgnore(s.Source, s.Ignore)
		if err != nil {
			return modpack.Options{}, err
		}
		opts.Ignore = ignore
	}
	return opts, nil
}
