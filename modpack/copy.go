package modpack

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/leocov-dev/pzpack/core"
	"github.com/leocov-dev/pzpack/fileio"
)

// ModError records why a single mod could not be copied
type ModError struct {
	ModID string
	Path  string
	Err   error
}

func (e ModError) Error() string {
	return fmt.Sprintf("mod %s (%s): %v", e.ModID, e.Path, e.Err)
}

func (e ModError) Unwrap() error {
	return e.Err
}

// CopyReport lists the outcome of a copy pass, in configured order
type CopyReport struct {
	Copied []string
	Failed []ModError
}

func (r *CopyReport) HasErrors() bool {
	return len(r.Failed) > 0
}

// copyMods merges every configured mod into the modpack. A failing mod is
// reported and recorded, and the remaining mods are still processed.
func copyMods(opts Options, pack *core.Modpack) *CopyReport {
	out := opts.out()
	report := &CopyReport{}
	contentDir := pack.GetContentDir()

	if len(opts.ModIDs) == 0 {
		fmt.Fprintln(out, "Warning: no mod ids configured, nothing to copy.")
	}

	for _, modID := range opts.ModIDs {
		srcPath := pack.Layout.SourceDir(opts.Source, modID)

		info, err := os.Stat(srcPath)
		if err != nil || !info.IsDir() {
			if err == nil {
				err = fmt.Errorf("%s is not a directory", srcPath)
			}
			fmt.Fprintf(out, "Error: %s not found for mod ID %s at %s\n", sourceLabel(pack.Layout), modID, srcPath)
			if suggestions := Suggest(opts.Source, modID); len(suggestions) > 0 {
				fmt.Fprintf(out, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
			}
			report.Failed = append(report.Failed, ModError{ModID: modID, Path: srcPath, Err: err})
			continue
		}

		fmt.Fprintf(out, "Copying contents of %s for mod ID: %s\n", sourceLabel(pack.Layout), modID)
		target := pack.Layout.TargetDir(contentDir, modID)
		if err := fileio.MergeDir(srcPath, target, opts.Ignore); err != nil {
			fmt.Fprintf(out, "Error: failed to copy mod ID %s: %v\n", modID, err)
			report.Failed = append(report.Failed, ModError{ModID: modID, Path: srcPath, Err: err})
			continue
		}

		log.Debug().Str("mod", modID).Str("from", srcPath).Str("to", target).Msg("Mod copied")
		report.Copied = append(report.Copied, modID)
	}

	return report
}

func sourceLabel(layout core.Layout) string {
	if layout.Nested {
		return "'mods' folder"
	}
	return "mod folder"
}
