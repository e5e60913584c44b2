package modpack

import (
	"os"
)

type ModStatus struct {
	ModID string
	Path  string
	Found bool
}

// Status describes a modpack without changing it
type Status struct {
	Root       string
	Exists     bool
	ContentDir string
	Mods       []ModStatus
	Contents   []string
}

// Inspect resolves every configured mod against the source library and lists
// what currently sits in the content directory.
func Inspect(opts Options) (*Status, error) {
	pack := opts.modpack()

	exists, err := pack.Exists()
	if err != nil {
		return nil, err
	}

	status := &Status{
		Root:       pack.GetRoot(),
		Exists:     exists,
		ContentDir: pack.GetContentDir(),
	}

	for _, modID := range opts.ModIDs {
		srcPath := pack.Layout.SourceDir(opts.Source, modID)
		info, err := os.Stat(srcPath)
		status.Mods = append(status.Mods, ModStatus{
			ModID: modID,
			Path:  srcPath,
			Found: err == nil && info.IsDir(),
		})
	}

	entries, err := os.ReadDir(status.ContentDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, entry := range entries {
		status.Contents = append(status.Contents, entry.Name())
	}
	return status, nil
}
