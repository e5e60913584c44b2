package fileio

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/leocov-dev/pzpack/core"
)

// InitModpackDirs creates the modpack root and its content directory
func InitModpackDirs(pack *core.Modpack) error {
	if err := os.MkdirAll(pack.GetContentDir(), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", pack.GetContentDir(), err)
	}
	log.Debug().Str("path", pack.GetContentDir()).Msg("Created content directory")
	return nil
}

// WriteDescriptor writes the layout's static descriptor file into the modpack root
func WriteDescriptor(pack *core.Modpack) (string, error) {
	path := pack.GetDescriptorPath()
	if err := writeFile(pack.Layout.DescriptorContent, path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", pack.Layout.DescriptorFile, err)
	}
	return path, nil
}
